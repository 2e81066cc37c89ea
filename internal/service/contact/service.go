package contact

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

const notFoundMessage = "Contact message not found"

type Service struct {
	repo      repository.ContactRepository
	validator validator.Validator
	metrics   *metrics.Metrics
	logger    *zerolog.Logger
}

func NewService(repo repository.ContactRepository, v validator.Validator, m *metrics.Metrics, logger *zerolog.Logger) *Service {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Service{repo: repo, validator: v, metrics: m, logger: logger}
}

func (s *Service) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	if err := s.validator.Validate("contact", req); err != nil {
		return nil, err
	}

	contact := req.ToContact()
	start := time.Now()
	err := s.repo.Create(ctx, contact)
	s.metrics.ObserveStore("contact_create", time.Since(start).Seconds(), err)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	s.logger.Info().Str("contact_id", contact.ID).Str("subject", contact.Subject).Msg("contact message received")
	return contact, nil
}

func (s *Service) List(ctx context.Context) ([]*model.Contact, error) {
	start := time.Now()
	contacts, err := s.repo.List(ctx)
	s.metrics.ObserveStore("contact_list", time.Since(start).Seconds(), err)
	if err != nil {
		return nil, apperrors.Persistence(err)
	}
	return contacts, nil
}

func (s *Service) Get(ctx context.Context, id string) (*model.Contact, error) {
	start := time.Now()
	contact, err := s.repo.Get(ctx, id)
	s.metrics.ObserveStore("contact_get", time.Since(start).Seconds(), ignoreNotFound(err))
	if err != nil {
		return nil, storeError(err)
	}
	return contact, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	start := time.Now()
	err := s.repo.Delete(ctx, id)
	s.metrics.ObserveStore("contact_delete", time.Since(start).Seconds(), ignoreNotFound(err))
	if err != nil {
		return storeError(err)
	}

	s.logger.Info().Str("contact_id", id).Msg("contact message deleted")
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
