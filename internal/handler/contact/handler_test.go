package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/DIX2580/salon-website/internal/middleware"
	"github.com/DIX2580/salon-website/internal/model"
	apperrors "github.com/DIX2580/salon-website/pkg/errors"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *mockService) List(ctx context.Context) ([]*model.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Contact), args.Error(1)
}

func (m *mockService) Get(ctx context.Context, id string) (*model.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *mockService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func setup(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateContact(t *testing.T) {
	svc := new(mockService)
	r := setup(svc)

	svc.On("Create", mock.Anything, &model.CreateContactRequest{
		Name: "Ann", Email: "a@x.com", Subject: "Hours", Message: "Open Sunday?",
	}).Return(&model.Contact{Base: model.Base{ID: "c1"}, Name: "Ann"}, nil)

	w := do(r, http.MethodPost, "/api/contacts", `{"name":"Ann","email":"a@x.com","subject":"Hours","message":"Open Sunday?"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"c1"`)
	svc.AssertExpectations(t)
}

func TestCreateContact_EmptyName(t *testing.T) {
	svc := new(mockService)
	r := setup(svc)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, apperrors.Validation("contact validation failed: name is required", nil))

	w := do(r, http.MethodPost, "/api/contacts", `{"name":"","email":"a@x.com","subject":"Hours","message":"Hi"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"contact validation failed: name is required"}`, w.Body.String())
}

func TestGetContact(t *testing.T) {
	svc := new(mockService)
	r := setup(svc)
	svc.On("Get", mock.Anything, "missing").Return(nil, apperrors.NotFound("Contact message not found", nil))

	w := do(r, http.MethodGet, "/api/contacts/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Contact message not found"}`, w.Body.String())
}

func TestListAndDelete(t *testing.T) {
	svc := new(mockService)
	r := setup(svc)
	svc.On("List", mock.Anything).Return([]*model.Contact{{Name: "B"}, {Name: "A"}}, nil)
	svc.On("Delete", mock.Anything, "c1").Return(nil)

	w := do(r, http.MethodGet, "/api/contacts", "")
	require.Equal(t, http.StatusOK, w.Code)
	var list []model.Contact
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, "B", list[0].Name)

	w = do(r, http.MethodDelete, "/api/contacts/c1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Contact message deleted"}`, w.Body.String())
}
