package booking

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DIX2580/salon-website/internal/handler"
	"github.com/DIX2580/salon-website/internal/model"
)

const deletedMessage = "Booking deleted"

type Service interface {
	Create(ctx context.Context, req *model.CreateBookingRequest) (*model.Booking, error)
	List(ctx context.Context) ([]*model.Booking, error)
	Get(ctx context.Context, id string) (*model.Booking, error)
	Update(ctx context.Context, id string, patch *model.BookingPatch) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	bookings := r.Group("/bookings")
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.DELETE("/:id", h.DeleteBooking)
	}
}

// CreateBooking answers 400 for every failure, store errors included.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req model.CreateBookingRequest
	if err := handler.BindJSON(c, "booking", &req); err != nil {
		handler.Fail(c, http.StatusBadRequest, err)
		return
	}

	booking, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Fail(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Fail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, bookings)
}

func (h *Handler) GetBooking(c *gin.Context) {
	booking, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.FailUnlessNotFound(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

// UpdateBooking answers 404 for a missing booking and 400 for anything else.
func (h *Handler) UpdateBooking(c *gin.Context) {
	var patch model.BookingPatch
	if err := handler.BindJSON(c, "booking", &patch); err != nil {
		handler.Fail(c, http.StatusBadRequest, err)
		return
	}

	booking, err := h.service.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		handler.FailUnlessNotFound(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusOK, booking)
}

func (h *Handler) DeleteBooking(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handler.FailUnlessNotFound(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: deletedMessage})
}
