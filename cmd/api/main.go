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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DIX2580/salon-website/internal/config"
	"github.com/DIX2580/salon-website/internal/email"
	bookingHandler "github.com/DIX2580/salon-website/internal/handler/booking"
	contactHandler "github.com/DIX2580/salon-website/internal/handler/contact"
	"github.com/DIX2580/salon-website/internal/handler/health"
	promHandler "github.com/DIX2580/salon-website/internal/handler/prometheus"
	"github.com/DIX2580/salon-website/internal/middleware"
	"github.com/DIX2580/salon-website/internal/repository"
	"github.com/DIX2580/salon-website/internal/repository/mongo"
	"github.com/DIX2580/salon-website/internal/repository/postgres"
	"github.com/DIX2580/salon-website/internal/router"
	bookingService "github.com/DIX2580/salon-website/internal/service/booking"
	contactService "github.com/DIX2580/salon-website/internal/service/contact"
	"github.com/DIX2580/salon-website/internal/service/notification"
	"github.com/DIX2580/salon-website/pkg/circuitbreaker"
	"github.com/DIX2580/salon-website/pkg/logger"
	"github.com/DIX2580/salon-website/pkg/messaging"
	"github.com/DIX2580/salon-website/pkg/messaging/redis"
	"github.com/DIX2580/salon-website/pkg/metrics"
	"github.com/DIX2580/salon-website/pkg/validator"
	"github.com/DIX2580/salon-website/pkg/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	l := logger.New(logger.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: "salon-api",
	})
	logger.SetGlobal(l)

	ctx := context.Background()

	store, err := openStore(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("failed to open store")
	}
	log.Info().Str("driver", cfg.Store.Driver).Msg("store connected")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New("salon", reg)

	// Notification dispatch
	dispatcher := worker.NewDispatcher(worker.DispatcherConfig{
		QueueSize:  cfg.Dispatch.QueueSize,
		RatePerSec: cfg.Dispatch.RatePerSec,
		Timeout:    cfg.Dispatch.Timeout,
	}, m, l)

	breaker := circuitbreaker.NewCircuitBreaker(circuitbreaker.Settings{
		Name:        "notification-" + cfg.Notify.Channel,
		MaxFailures: 5,
		Timeout:     time.Minute,
	})
	dispatcher.Register("notification", notification.NewService(newSender(cfg, l), breaker, m, l))

	var broker messaging.Broker
	if cfg.Redis.URL != "" {
		broker, err = redis.NewRedisBroker(ctx, redis.Config{URL: cfg.Redis.URL}, l)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
		dispatcher.Register("redis", messaging.NewEventPublisher(broker, m, l))
	}
	dispatcher.Start()

	v := validator.New()
	bookingSvc := bookingService.NewService(store.Bookings(), v, dispatcher, m, l)
	contactSvc := contactService.NewService(store.Contacts(), v, m, l)

	r := router.NewRouter(
		bookingHandler.NewHandler(bookingSvc),
		contactHandler.NewHandler(contactSvc),
		health.NewHandler(store),
		promHandler.New(reg, m),
		router.RouterConfig{
			CORSConfig: middleware.DefaultCORSConfig(cfg.CORS.AllowedOrigins...),
		},
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           r.Engine(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server forced to shutdown")
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("notification dispatcher did not drain")
	}
	if broker != nil {
		if err := broker.Close(); err != nil {
			log.Error().Err(err).Msg("failed to close Redis broker")
		}
	}
	if err := store.Close(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("failed to close store")
	}

	log.Info().Msg("server exited properly")
}

func openStore(ctx context.Context, cfg config.StoreConfig) (repository.Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewDB(ctx, postgres.Config{URL: cfg.DatabaseURL})
		if err != nil {
			return nil, err
		}
		if err := postgres.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return postgres.NewStore(db), nil
	default:
		return mongo.NewStore(ctx, mongo.Config{URI: cfg.MongoURI, Database: cfg.MongoDatabase})
	}
}

func newSender(cfg *config.Config, l *zerolog.Logger) notification.Sender {
	switch cfg.Notify.Channel {
	case config.ChannelWhatsApp:
		return notification.NewWhatsAppSender(notification.WhatsAppConfig{
			AccountSID:   cfg.Twilio.AccountSID,
			APIKeySID:    cfg.Twilio.APIKeySID,
			APIKeySecret: cfg.Twilio.APIKeySecret,
			From:         cfg.Twilio.WhatsAppNumber,
			To:           cfg.Twilio.AdminNumber,
		})
	case config.ChannelEmail:
		smtp := email.NewSMTPService(email.Config{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			User:     cfg.SMTP.User,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		})
		return notification.NewEmailSender(smtp, cfg.SMTP.AdminEmail)
	default:
		return notification.NewLogSender(l)
	}
}
