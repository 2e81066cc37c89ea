package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/pkg/metrics"
)

type recorder struct {
	mu     sync.Mutex
	events []*model.BookingEvent
	err    error
}

func (r *recorder) Handle(_ context.Context, event *model.BookingEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return r.err
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

func event(bookingID string) *model.BookingEvent {
	return model.NewBookingCreatedEvent(model.Booking{Base: model.Base{ID: bookingID}})
}

func TestDispatcher_DeliversEachHandler(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 10}, nil, nil)
	first, second := &recorder{}, &recorder{err: errors.New("broker down")}
	d.Register("first", first)
	d.Register("second", second)
	d.Start()

	assert.True(t, d.Enqueue(event("b1")))
	assert.True(t, d.Enqueue(event("b2")))
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 2, first.count())
	assert.Equal(t, 2, second.count(), "a failing handler does not stop later events")
}

func TestDispatcher_NoRetry(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 10}, nil, nil)
	failing := &recorder{err: errors.New("twilio 401")}
	d.Register("notify", failing)
	d.Start()

	d.Enqueue(event("b1"))
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 1, failing.count())
}

func TestDispatcher_SkipsDuplicateBooking(t *testing.T) {
	m := metrics.New("test", nil)
	d := NewDispatcher(DispatcherConfig{QueueSize: 10}, m, nil)
	rec := &recorder{}
	d.Register("notify", rec)
	d.Start()

	d.Enqueue(event("b1"))
	d.Enqueue(event("b1"))
	require.NoError(t, d.Stop(context.Background()))

	assert.Equal(t, 1, rec.count())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsSkipped))
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	m := metrics.New("test", nil)
	d := NewDispatcher(DispatcherConfig{QueueSize: 1}, m, nil)

	assert.True(t, d.Enqueue(event("b1")))
	assert.False(t, d.Enqueue(event("b2")), "queue full")
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationsDropped))

	require.NoError(t, d.Stop(context.Background()))
	assert.False(t, d.Enqueue(event("b3")), "stopped")
}

func TestDispatcher_HandlerTimeout(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 1, Timeout: 20 * time.Millisecond}, nil, nil)
	var gotErr error
	d.Register("slow", HandlerFunc(func(ctx context.Context, _ *model.BookingEvent) error {
		<-ctx.Done()
		gotErr = ctx.Err()
		return gotErr
	}))
	d.Start()

	d.Enqueue(event("b1"))
	require.NoError(t, d.Stop(context.Background()))
	assert.ErrorIs(t, gotErr, context.DeadlineExceeded)
}

func TestDispatcher_StopDeadlineCancelsInFlight(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 1, Timeout: time.Minute}, nil, nil)
	started := make(chan struct{})
	d.Register("stuck", HandlerFunc(func(ctx context.Context, _ *model.BookingEvent) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))
	d.Start()
	d.Enqueue(event("b1"))
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, d.Stop(ctx), context.DeadlineExceeded)
}

func TestDispatcher_RecoversHandlerPanic(t *testing.T) {
	d := NewDispatcher(DispatcherConfig{QueueSize: 10}, nil, nil)
	rec := &recorder{}
	d.Register("panics", HandlerFunc(func(context.Context, *model.BookingEvent) error { panic("nil map") }))
	d.Register("after", rec)
	d.Start()

	d.Enqueue(event("b1"))
	d.Enqueue(event("b2"))
	require.NoError(t, d.Stop(context.Background()))
	assert.Equal(t, 2, rec.count())
}
