package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/DIX2580/salon-website/internal/repository"
)

const (
	bookingsCollection = "bookings"
	contactsCollection = "contacts"
)

type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
}

// Store is the document store holding the bookings and contacts collections.
type Store struct {
	client   *mongo.Client
	bookings repository.BookingRepository
	contacts repository.ContactRepository
}

func NewStore(ctx context.Context, cfg Config) (*Store, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return newStore(client, client.Database(cfg.Database)), nil
}

func newStore(client *mongo.Client, db *mongo.Database) *Store {
	return &Store{
		client:   client,
		bookings: NewBookingRepository(db.Collection(bookingsCollection)),
		contacts: NewContactRepository(db.Collection(contactsCollection)),
	}
}

func (s *Store) Bookings() repository.BookingRepository { return s.bookings }

func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
