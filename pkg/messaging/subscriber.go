package messaging

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/pkg/metrics"
)

// EventHandler receives one decoded booking event.
type EventHandler func(ctx context.Context, event *model.BookingEvent) error

// EventSubscriber decodes booking events from a broker channel and hands
// them to a handler, one at a time.
type EventSubscriber struct {
	broker  Broker
	handler EventHandler
	metrics *metrics.Metrics
	logger  *zerolog.Logger
}

func NewEventSubscriber(broker Broker, handler EventHandler, m *metrics.Metrics, logger *zerolog.Logger) *EventSubscriber {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &EventSubscriber{broker: broker, handler: handler, metrics: m, logger: logger}
}

// Run blocks until ctx is cancelled or the broker closes the channel.
// Undecodable messages and handler errors are logged and skipped.
func (s *EventSubscriber) Run(ctx context.Context, channel string) error {
	messages, err := s.broker.Subscribe(ctx, channel)
	if err != nil {
		return err
	}
	s.logger.Info().Str("channel", channel).Msg("subscribed to booking events")

	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			s.consume(ctx, msg)
		}
	}
}

func (s *EventSubscriber) consume(ctx context.Context, msg []byte) {
	var event model.BookingEvent
	if err := json.Unmarshal(msg, &event); err != nil {
		s.count("invalid")
		s.logger.Warn().Err(err).Msg("discarding malformed booking event")
		return
	}

	if err := s.handler(ctx, &event); err != nil {
		s.count("error")
		s.logger.Error().Err(err).Str("event_id", event.ID.String()).Msg("booking event handler failed")
		return
	}
	s.count("success")
}

func (s *EventSubscriber) count(status string) {
	if s.metrics != nil {
		s.metrics.EventsConsumed.WithLabelValues(status).Inc()
	}
}
