package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/pkg/metrics"
)

type mockBroker struct {
	mock.Mock
}

func (m *mockBroker) Publish(ctx context.Context, channel string, message interface{}) error {
	return m.Called(ctx, channel, message).Error(0)
}

func (m *mockBroker) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	args := m.Called(ctx, channel)
	return args.Get(0).(<-chan []byte), args.Error(1)
}

func (m *mockBroker) Close() error { return m.Called().Error(0) }

func TestEventPublisher_Handle(t *testing.T) {
	broker := new(mockBroker)
	m := metrics.New("test", nil)
	p := NewEventPublisher(broker, m, nil)
	event := model.NewBookingCreatedEvent(model.Booking{Base: model.Base{ID: "b1"}})

	broker.On("Publish", mock.Anything, "booking.created", event).Return(nil).Once()
	broker.On("Publish", mock.Anything, "booking.created", event).Return(errors.New("READONLY")).Once()

	assert.NoError(t, p.Handle(context.Background(), event))
	assert.ErrorContains(t, p.Handle(context.Background(), event), "READONLY")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsPublished.WithLabelValues("error")))
	broker.AssertExpectations(t)
}
