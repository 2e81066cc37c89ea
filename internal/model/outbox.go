package model

import (
	"time"

	"github.com/google/uuid"
)

const EventBookingCreated = "booking.created"

// BookingEvent is queued after a booking is stored and handed to the
// notification dispatcher.
type BookingEvent struct {
	ID        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Booking   Booking   `json:"booking"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewBookingCreatedEvent(b Booking) *BookingEvent {
	return &BookingEvent{
		ID:        uuid.New(),
		Type:      EventBookingCreated,
		Booking:   b,
		CreatedAt: time.Now(),
	}
}
