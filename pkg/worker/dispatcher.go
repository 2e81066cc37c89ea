package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/pkg/metrics"
)

// Handler processes one booking event. Errors are logged, never retried.
type Handler interface {
	Handle(ctx context.Context, event *model.BookingEvent) error
}

type HandlerFunc func(ctx context.Context, event *model.BookingEvent) error

func (f HandlerFunc) Handle(ctx context.Context, event *model.BookingEvent) error {
	return f(ctx, event)
}

type DispatcherConfig struct {
	QueueSize int
	// RatePerSec paces handler invocations. Zero or less disables pacing.
	RatePerSec float64
	Burst      int
	// Timeout bounds each handler call.
	Timeout time.Duration
	// DedupeTTL is how long a delivered booking id is remembered.
	DedupeTTL time.Duration
}

type namedHandler struct {
	name    string
	handler Handler
}

// Dispatcher runs booking event handlers on a background goroutine, detached
// from the request that produced the event. Delivery is at most once.
type Dispatcher struct {
	cfg      DispatcherConfig
	queue    chan *model.BookingEvent
	handlers []namedHandler
	limiter  *rate.Limiter
	seen     *cache.Cache
	metrics  *metrics.Metrics
	logger   *zerolog.Logger

	mu      sync.RWMutex
	started bool
	closed  bool

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

func NewDispatcher(cfg DispatcherConfig, m *metrics.Metrics, logger *zerolog.Logger) *Dispatcher {
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.DedupeTTL <= 0 {
		cfg.DedupeTTL = time.Hour
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Dispatcher{
		cfg:     cfg,
		queue:   make(chan *model.BookingEvent, cfg.QueueSize),
		limiter: rate.NewLimiter(limit, cfg.Burst),
		seen:    cache.New(cfg.DedupeTTL, 2*cfg.DedupeTTL),
		metrics: m,
		logger:  logger,
		ctx:     ctx,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
}

// Register adds a handler. Call before Start.
func (d *Dispatcher) Register(name string, h Handler) {
	d.handlers = append(d.handlers, namedHandler{name: name, handler: h})
}

func (d *Dispatcher) Start() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	go d.run()
}

// Enqueue hands the event to the background worker without blocking. It
// returns false when the event was dropped.
func (d *Dispatcher) Enqueue(event *model.BookingEvent) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.dropped(event, "dispatcher stopped")
		return false
	}

	select {
	case d.queue <- event:
		return true
	default:
		d.dropped(event, "queue full")
		return false
	}
}

func (d *Dispatcher) dropped(event *model.BookingEvent, reason string) {
	if d.metrics != nil {
		d.metrics.NotificationsDropped.Inc()
	}
	d.logger.Warn().
		Str("booking_id", event.Booking.ID).
		Str("event_id", event.ID.String()).
		Str("reason", reason).
		Msg("booking event dropped")
}

// Stop refuses new events and waits for queued ones to finish. When ctx
// expires first, in-flight handlers are cancelled.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		d.cancel()
		return nil
	}

	select {
	case <-d.done:
		d.cancel()
		return nil
	case <-ctx.Done():
		d.cancel()
		<-d.done
		return ctx.Err()
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)

	d.logger.Info().Int("queue_size", d.cfg.QueueSize).Msg("starting notification dispatcher")
	for event := range d.queue {
		d.process(event)
	}
	d.logger.Info().Msg("notification dispatcher stopped")
}

func (d *Dispatcher) process(event *model.BookingEvent) {
	key := event.Booking.ID
	if key == "" {
		key = event.ID.String()
	}
	if err := d.seen.Add(key, event.ID.String(), cache.DefaultExpiration); err != nil {
		if d.metrics != nil {
			d.metrics.NotificationsSkipped.Inc()
		}
		d.logger.Debug().Str("booking_id", event.Booking.ID).Msg("duplicate booking event skipped")
		return
	}

	if err := d.limiter.Wait(d.ctx); err != nil {
		d.dropped(event, "shutdown before dispatch")
		return
	}

	start := time.Now()
	for _, nh := range d.handlers {
		d.invoke(nh, event)
	}
	if d.metrics != nil {
		d.metrics.DispatchLatency.Observe(time.Since(start).Seconds())
	}
}

func (d *Dispatcher) invoke(nh namedHandler, event *model.BookingEvent) {
	ctx, cancel := context.WithTimeout(d.ctx, d.cfg.Timeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error().
				Interface("panic", r).
				Str("handler", nh.name).
				Str("booking_id", event.Booking.ID).
				Msg("booking event handler panicked")
		}
	}()

	if err := nh.handler.Handle(ctx, event); err != nil {
		level := d.logger.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			level = d.logger.Warn()
		}
		level.Err(err).
			Str("handler", nh.name).
			Str("booking_id", event.Booking.ID).
			Str("event_id", event.ID.String()).
			Msg("booking event handler failed")
	}
}
