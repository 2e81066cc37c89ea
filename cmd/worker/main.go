package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DIX2580/salon-website/internal/config"
	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/internal/service/notification"
	"github.com/DIX2580/salon-website/pkg/logger"
	"github.com/DIX2580/salon-website/pkg/messaging"
	"github.com/DIX2580/salon-website/pkg/messaging/redis"
	"github.com/DIX2580/salon-website/pkg/metrics"
)

// The worker follows the booking feed the API publishes to Redis and writes
// every new booking to the log. It never sends notifications itself.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	l := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "salon-worker",
	})
	wl := l.With().Str("worker_id", workerID()).Logger()
	l = &wl
	logger.SetGlobal(l)

	if cfg.Redis.URL == "" {
		log.Fatal().Msg("REDIS_URL is required by the worker")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	broker, err := redis.NewRedisBroker(ctx, redis.Config{URL: cfg.Redis.URL}, l)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to Redis")
	}
	defer broker.Close()

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New("salon_worker", reg)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Worker.MetricsPort),
		Handler:           opsMux(reg),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("ops server failed")
			cancel()
		}
	}()

	subscriber := messaging.NewEventSubscriber(broker, logBooking(l), m, l)
	if err := subscriber.Run(ctx, model.EventBookingCreated); err != nil {
		log.Error().Err(err).Msg("booking feed stopped")
	}

	log.Info().Msg("worker shutting down")
	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer stop()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("ops server forced to shutdown")
	}
}

func logBooking(l *zerolog.Logger) messaging.EventHandler {
	return func(_ context.Context, e *model.BookingEvent) error {
		l.Info().
			Str("event_id", e.ID.String()).
			Str("booking_id", e.Booking.ID).
			Dur("lag", time.Since(e.CreatedAt)).
			Str("summary", notification.Compose(e.Booking)).
			Msg("booking received")
		return nil
	}
}

func opsMux(reg *prometheus.Registry) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health/live", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func workerID() string {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return fmt.Sprintf("%s-%d", hostname, os.Getpid())
}
