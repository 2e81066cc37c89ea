package messaging

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/pkg/metrics"
)

// Broker defines the interface for message brokers
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// EventPublisher forwards booking events to a broker channel named after
// the event type.
type EventPublisher struct {
	broker  Broker
	metrics *metrics.Metrics
	logger  *zerolog.Logger
}

func NewEventPublisher(broker Broker, m *metrics.Metrics, logger *zerolog.Logger) *EventPublisher {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &EventPublisher{broker: broker, metrics: m, logger: logger}
}

func (p *EventPublisher) Handle(ctx context.Context, event *model.BookingEvent) error {
	start := time.Now()
	err := p.broker.Publish(ctx, event.Type, event)

	status := "success"
	if err != nil {
		status = "error"
	}
	if p.metrics != nil {
		p.metrics.EventsPublished.WithLabelValues(status).Inc()
	}

	if err != nil {
		return err
	}
	p.logger.Debug().
		Str("channel", event.Type).
		Str("booking_id", event.Booking.ID).
		Dur("latency", time.Since(start)).
		Msg("booking event published")
	return nil
}
