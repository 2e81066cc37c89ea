package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/internal/repository"
)

type bookingDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Service   string             `bson:"service"`
	Stylist   string             `bson:"stylist"`
	Date      string             `bson:"date"`
	Time      string             `bson:"time"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Phone     string             `bson:"phone"`
	Notes     string             `bson:"notes"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *bookingDocument) toModel() *model.Booking {
	return &model.Booking{
		Base: model.Base{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Service: d.Service,
		Stylist: d.Stylist,
		Date:    d.Date,
		Time:    d.Time,
		Name:    d.Name,
		Email:   d.Email,
		Phone:   d.Phone,
		Notes:   d.Notes,
	}
}

type bookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(coll *mongo.Collection) repository.BookingRepository {
	return &bookingRepository{coll: coll}
}

func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	ts := now()
	doc := bookingDocument{
		ID:        primitive.NewObjectID(),
		Service:   booking.Service,
		Stylist:   booking.Stylist,
		Date:      booking.Date,
		Time:      booking.Time,
		Name:      booking.Name,
		Email:     booking.Email,
		Phone:     booking.Phone,
		Notes:     booking.Notes,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	booking.ID = doc.ID.Hex()
	booking.CreatedAt = ts
	booking.UpdatedAt = ts
	return nil
}

func (r *bookingRepository) List(ctx context.Context) ([]*model.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, listOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	var docs []bookingDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	bookings := make([]*model.Booking, 0, len(docs))
	for i := range docs {
		bookings = append(bookings, docs[i].toModel())
	}
	return bookings, nil
}

func (r *bookingRepository) Get(ctx context.Context, id string) (*model.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc bookingDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toModel(), nil
}

func (r *bookingRepository) Update(ctx context.Context, id string, patch *model.BookingPatch) (*model.Booking, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": now()}
	for k, v := range patch.Fields() {
		set[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc bookingDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		return nil, translate(err)
	}
	return doc.toModel(), nil
}

func (r *bookingRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
