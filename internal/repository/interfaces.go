package repository

import (
	"context"
	"errors"

	"github.com/DIX2580/salon-website/internal/model"
)

var (
	// ErrNotFound is returned when a well-formed identifier matches no record.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an identifier cannot address any record.
	ErrInvalidID = errors.New("invalid identifier")
)

type (
	// BookingRepository persists bookings. Create assigns ID and timestamps.
	// List returns newest first.
	BookingRepository interface {
		Create(ctx context.Context, booking *model.Booking) error
		List(ctx context.Context) ([]*model.Booking, error)
		Get(ctx context.Context, id string) (*model.Booking, error)
		Update(ctx context.Context, id string, patch *model.BookingPatch) (*model.Booking, error)
		Delete(ctx context.Context, id string) error
	}

	// ContactRepository persists contact messages. There is no update.
	ContactRepository interface {
		Create(ctx context.Context, contact *model.Contact) error
		List(ctx context.Context) ([]*model.Contact, error)
		Get(ctx context.Context, id string) (*model.Contact, error)
		Delete(ctx context.Context, id string) error
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}

	// Store bundles both repositories with the backing connection.
	Store interface {
		Pinger
		Bookings() BookingRepository
		Contacts() ContactRepository
		Close(ctx context.Context) error
	}
)
