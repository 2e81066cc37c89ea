package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/DIX2580/salon-website/internal/repository"
)

type bookingRepository struct {
	BaseRepository
}

type contactRepository struct {
	BaseRepository
}

func NewBookingRepository(db *sqlx.DB) repository.BookingRepository {
	return &bookingRepository{NewBaseRepository(db)}
}

func NewContactRepository(db *sqlx.DB) repository.ContactRepository {
	return &contactRepository{NewBaseRepository(db)}
}

// Store is the relational alternative to the document store.
type Store struct {
	db       *sqlx.DB
	bookings repository.BookingRepository
	contacts repository.ContactRepository
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{
		db:       db,
		bookings: NewBookingRepository(db),
		contacts: NewContactRepository(db),
	}
}

func (s *Store) Bookings() repository.BookingRepository { return s.bookings }

func (s *Store) Contacts() repository.ContactRepository { return s.contacts }

func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) Close(_ context.Context) error {
	return s.db.Close()
}
