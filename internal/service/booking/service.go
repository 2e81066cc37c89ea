package booking

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/internal/repository"
	apperrors "github.com/DIX2580/salon-website/pkg/errors"
	"github.com/DIX2580/salon-website/pkg/metrics"
	"github.com/DIX2580/salon-website/pkg/validator"
)

const notFoundMessage = "Booking not found"

// Enqueuer accepts booking events for detached processing. Enqueue must not
// block; it reports false when the event was dropped.
type Enqueuer interface {
	Enqueue(event *model.BookingEvent) bool
}

type Service struct {
	repo      repository.BookingRepository
	validator validator.Validator
	outbox    Enqueuer
	metrics   *metrics.Metrics
	logger    *zerolog.Logger
}

func NewService(repo repository.BookingRepository, v validator.Validator, outbox Enqueuer, m *metrics.Metrics, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{
		repo:      repo,
		validator: v,
		outbox:    outbox,
		metrics:   m,
		logger:    logger,
	}
}

// Create validates and stores the booking, then queues the admin
// notification. The notification outcome never affects the result.
func (s *Service) Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error) {
	if err := s.validator.Validate("booking", req); err != nil {
		return nil, err
	}

	booking := req.ToBooking()
	start := time.Now()
	err := s.repo.Create(ctx, booking)
	s.metrics.ObserveStore("booking_create", time.Since(start).Seconds(), err)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	s.logger.Info().
		Str("booking_id", booking.ID).
		Str("service", booking.Service).
		Str("stylist", booking.Stylist).
		Msg("booking created")

	if s.outbox != nil {
		if !s.outbox.Enqueue(model.NewBookingCreatedEvent(*booking)) {
			s.logger.Warn().Str("booking_id", booking.ID).Msg("booking notification not queued")
		}
	}

	return booking, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Booking, error) {
	start := time.Now()
	bookings, err := s.repo.List(ctx)
	s.metrics.ObserveStore("booking_list", time.Since(start).Seconds(), err)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	return bookings, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Booking, error) {
	start := time.Now()
	booking, err := s.repo.Get(ctx, id)
	s.metrics.ObserveStore("booking_get", time.Since(start).Seconds(), ignoreNotFound(err))
	if err != nil {
		return nil, storeError(err)
	}
	return booking, nil
}

// Update applies the present fields of patch. Last write wins.
func (s *Service) Update(ctx context.Context, id string, patch *model.BookingPatch) (*model.Booking, error) {
	if err := s.validator.Validate("booking", patch); err != nil {
		return nil, err
	}

	start := time.Now()
	booking, err := s.repo.Update(ctx, id, patch)
	s.metrics.ObserveStore("booking_update", time.Since(start).Seconds(), ignoreNotFound(err))
	if err != nil {
		return nil, storeError(err)
	}

	s.logger.Info().Str("booking_id", booking.ID).Msg("booking updated")
	return booking, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveStore("booking_delete", time.Since(start).Seconds(), ignoreNotFound(err))
	if err != nil {
		return storeError(err)
	}

	s.logger.Info().Str("booking_id", id).Msg("booking deleted")
	return nil
}

func storeError(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NotFound(notFoundMessage, err)
	}
	return apperrors.Persistence(err)
}

func ignoreNotFound(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}
