package contact

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DIX2580/salon-website/internal/handler"
	"github.com/DIX2580/salon-website/internal/model"
)

const deletedMessage = "Contact message deleted"

type Service interface {
	Create(ctx context.Context, req *model.CreateContactRequest) (*model.Contact, error)
	List(ctx context.Context) ([]*model.Contact, error)
	Get(ctx context.Context, id string) (*model.Contact, error)
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	contacts := r.Group("/contacts")
	{
		contacts.POST("", h.CreateContact)
		contacts.GET("", h.ListContacts)
		contacts.GET("/:id", h.GetContact)
		contacts.DELETE("/:id", h.DeleteContact)
	}
}

func (h *Handler) CreateContact(c *gin.Context) {
	var req model.CreateContactRequest
	if err := handler.BindJSON(c, "contact", &req); err != nil {
		handler.Fail(c, http.StatusBadRequest, err)
		return
	}

	contact, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		handler.Fail(c, http.StatusBadRequest, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.service.List(c.Request.Context())
	if err != nil {
		handler.Fail(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, contacts)
}

func (h *Handler) GetContact(c *gin.Context) {
	contact, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		handler.FailUnlessNotFound(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

func (h *Handler) DeleteContact(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handler.FailUnlessNotFound(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: deletedMessage})
}
