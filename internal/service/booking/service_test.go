package booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DIX2580/salon-website/internal/model"
	"github.com/DIX2580/salon-website/internal/repository"
	apperrors "github.com/DIX2580/salon-website/pkg/errors"
	"github.com/DIX2580/salon-website/pkg/metrics"
	"github.com/DIX2580/salon-website/pkg/validator"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Create(ctx context.Context, b *model.Booking) error {
	return m.Called(ctx, b).Error(0)
}

func (m *mockRepo) List(ctx context.Context) ([]*model.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Booking), args.Error(1)
}

func (m *mockRepo) Get(ctx context.Context, id string) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, id string, p *model.BookingPatch) (*model.Booking, error) {
	args := m.Called(ctx, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Booking), args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type mockOutbox struct {
	mock.Mock
}

func (m *mockOutbox) Enqueue(event *model.BookingEvent) bool {
	return m.Called(event).Bool(0)
}

func validRequest() *model.CreateBookingRequest {
	return &model.CreateBookingRequest{
		Service: "Haircut & Styling",
		Stylist: "Sophia Reynolds",
		Date:    "2025-05-01",
		Time:    "10:00 AM",
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Phone:   "555-0100",
	}
}

func newService(repo *mockRepo, outbox Enqueuer) *Service {
	return NewService(repo, validator.New(), outbox, metrics.New("test", nil), nil)
}

func TestCreate_PersistsAndEnqueues(t *testing.T) {
	repo := new(mockRepo)
	outbox := new(mockOutbox)
	svc := newService(repo, outbox)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Booking")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Booking).ID = "b1"
		}).
		Return(nil)
	outbox.On("Enqueue", mock.MatchedBy(func(e *model.BookingEvent) bool {
		return e.Type == model.EventBookingCreated && e.Booking.ID == "b1" && e.Booking.Name == "Jane Doe"
	})).Return(true)

	booking, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "b1", booking.ID)
	assert.Equal(t, "Sophia Reynolds", booking.Stylist)

	repo.AssertExpectations(t)
	outbox.AssertExpectations(t)
}

func TestCreate_DroppedNotificationStillSucceeds(t *testing.T) {
	repo := new(mockRepo)
	outbox := new(mockOutbox)
	svc := newService(repo, outbox)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	outbox.On("Enqueue", mock.Anything).Return(false)

	_, err := svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreate_ValidationStopsBeforeStore(t *testing.T) {
	repo := new(mockRepo)
	outbox := new(mockOutbox)
	svc := newService(repo, outbox)

	req := validRequest()
	req.Name = ""
	req.Phone = ""

	_, err := svc.Create(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "phone is required")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	outbox.AssertNotCalled(t, "Enqueue", mock.Anything)
}

func TestCreate_StoreFailureDoesNotEnqueue(t *testing.T) {
	repo := new(mockRepo)
	outbox := new(mockOutbox)
	svc := newService(repo, outbox)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	_, err := svc.Create(context.Background(), validRequest())
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindPersistence))
	assert.Contains(t, err.Error(), "connection refused")
	outbox.AssertNotCalled(t, "Enqueue", mock.Anything)
}

func TestCreate_WithoutOutbox(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestGet_ErrorKinds(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		kind    apperrors.Kind
		message string
	}{
		{name: "not found", repoErr: repository.ErrNotFound, kind: apperrors.KindNotFound, message: "Booking not found"},
		{name: "malformed id", repoErr: repository.ErrInvalidID, kind: apperrors.KindPersistence, message: "invalid identifier"},
		{name: "store failure", repoErr: errors.New("timeout"), kind: apperrors.KindPersistence, message: "timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockRepo)
			svc := newService(repo, nil)
			repo.On("Get", mock.Anything, "x").Return(nil, tt.repoErr)

			_, err := svc.Get(context.Background(), "x")
			appErr, ok := apperrors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, appErr.Kind)
			assert.Contains(t, appErr.Message, tt.message)
		})
	}
}

func TestUpdate(t *testing.T) {
	t.Run("rejects emptied required field", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newService(repo, nil)
		empty := ""

		_, err := svc.Update(context.Background(), "b1", &model.BookingPatch{Name: &empty})
		require.Error(t, err)
		assert.True(t, apperrors.IsKind(err, apperrors.KindValidation))
		assert.Contains(t, err.Error(), "name must not be empty")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("allows clearing notes", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newService(repo, nil)
		empty := ""
		patch := &model.BookingPatch{Notes: &empty}
		repo.On("Update", mock.Anything, "b1", patch).Return(&model.Booking{Base: model.Base{ID: "b1"}}, nil)

		booking, err := svc.Update(context.Background(), "b1", patch)
		require.NoError(t, err)
		assert.Equal(t, "b1", booking.ID)
	})

	t.Run("missing record", func(t *testing.T) {
		repo := new(mockRepo)
		svc := newService(repo, nil)
		repo.On("Update", mock.Anything, "b1", mock.Anything).Return(nil, repository.ErrNotFound)

		_, err := svc.Update(context.Background(), "b1", &model.BookingPatch{})
		assert.True(t, apperrors.IsKind(err, apperrors.KindNotFound))
	})
}

func TestDelete(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, nil)
	repo.On("Delete", mock.Anything, "b1").Return(nil).Once()
	repo.On("Delete", mock.Anything, "b1").Return(repository.ErrNotFound).Once()

	assert.NoError(t, svc.Delete(context.Background(), "b1"))
	assert.True(t, apperrors.IsKind(svc.Delete(context.Background(), "b1"), apperrors.KindNotFound))
}

func TestList(t *testing.T) {
	repo := new(mockRepo)
	svc := newService(repo, nil)
	repo.On("List", mock.Anything).Return([]*model.Booking{{Name: "B"}, {Name: "A"}}, nil)

	bookings, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
}
