package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/pkg/circuitbreaker"
	apperrors "github.com/DIX2580/salon-website/pkg/errors"
	"github.com/DIX2580/salon-website/pkg/metrics"
)

const alertSubject = "New Booking Alert"

// Sender delivers one message to the single configured admin recipient.
type Sender interface {
	Channel() string
	Recipient() string
	Send(ctx context.Context, subject, body string) (providerID string, err error)
}

type Service struct {
	sender  Sender
	breaker *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
	logger  *zerolog.Logger
}

// NewService builds the booking alert notifier. breaker may be nil.
func NewService(sender Sender, breaker *circuitbreaker.CircuitBreaker, m *metrics.Metrics, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{sender: sender, breaker: breaker, metrics: m, logger: logger}
}

// Compose renders the admin alert for a booking.
func Compose(b model.Booking) string {
	notes := b.Notes
	if notes == "" {
		notes = "None"
	}

	var sb strings.Builder
	sb.WriteString("New Booking Alert! 💇‍♀️\n\n")
	fmt.Fprintf(&sb, "Service: %s\n", b.Service)
	fmt.Fprintf(&sb, "Stylist: %s\n", b.Stylist)
	fmt.Fprintf(&sb, "Date: %s\n", b.Date)
	fmt.Fprintf(&sb, "Time: %s\n\n", b.Time)
	fmt.Fprintf(&sb, "Client: %s\n", b.Name)
	fmt.Fprintf(&sb, "Phone: %s\n", b.Phone)
	fmt.Fprintf(&sb, "Email: %s\n\n", b.Email)
	fmt.Fprintf(&sb, "Notes: %s", notes)
	return sb.String()
}

// Handle sends one alert for a booking.created event. Other event types are
// ignored. The send is attempted once.
func (s *Service) Handle(ctx context.Context, event *model.BookingEvent) error {
	if event.Type != model.EventBookingCreated {
		return nil
	}

	n := &model.Notification{
		EventID:   event.ID.String(),
		BookingID: event.Booking.ID,
		Channel:   s.sender.Channel(),
		Recipient: s.sender.Recipient(),
		Content:   Compose(event.Booking),
	}

	send := func() error {
		id, err := s.sender.Send(ctx, alertSubject, n.Content)
		n.ProviderID = id
		return err
	}

	var err error
	if s.breaker != nil {
		err = s.breaker.Execute(send)
	} else {
		err = send()
	}

	if err != nil {
		if s.metrics != nil {
			s.metrics.NotificationsFailed.Inc()
		}
		s.logger.Error().
			Err(err).
			Str("booking_id", n.BookingID).
			Str("event_id", n.EventID).
			Str("channel", n.Channel).
			Str("recipient", n.Recipient).
			Msg("failed to send booking notification")
		return apperrors.Notification(err)
	}

	if s.metrics != nil {
		s.metrics.NotificationsSent.Inc()
	}
	s.logger.Info().
		Str("booking_id", n.BookingID).
		Str("event_id", n.EventID).
		Str("channel", n.Channel).
		Str("recipient", n.Recipient).
		Str("provider_id", n.ProviderID).
		Msg("booking notification sent")
	return nil
}
