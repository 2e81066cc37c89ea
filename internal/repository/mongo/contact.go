package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/internal/repository"
)

type contactDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Subject   string             `bson:"subject"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *contactDocument) toModel() *model.Contact {
	return &model.Contact{
		Base: model.Base{
			ID:        d.ID.Hex(),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
		Name:    d.Name,
		Email:   d.Email,
		Subject: d.Subject,
		Message: d.Message,
	}
}

type contactRepository struct {
	coll *mongo.Collection
}

func NewContactRepository(coll *mongo.Collection) repository.ContactRepository {
	return &contactRepository{coll: coll}
}

func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	ts := now()
	doc := contactDocument{
		ID:        primitive.NewObjectID(),
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		CreatedAt: ts,
		UpdatedAt: ts,
	}

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}

	contact.ID = doc.ID.Hex()
	contact.CreatedAt = ts
	contact.UpdatedAt = ts
	return nil
}

func (r *contactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	cursor, err := r.coll.Find(ctx, bson.D{}, listOptions())
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}

	var docs []contactDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}

	contacts := make([]*model.Contact, 0, len(docs))
	for i := range docs {
		contacts = append(contacts, docs[i].toModel())
	}
	return contacts, nil
}

func (r *contactRepository) Get(ctx context.Context, id string) (*model.Contact, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}

	var doc contactDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return doc.toModel(), nil
}

func (r *contactRepository) Delete(ctx context.Context, id string) error {
	oid, err := objectID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
