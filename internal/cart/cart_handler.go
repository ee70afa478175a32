package cart

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/response"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{service: s, logger: l}
}

// Add handles POST /carts.
func (h *Handler) Add(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	id, err := h.service.Add(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("cart add failed", zap.String("email", req.Email), zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, InsertResultResponse{InsertedID: id})
}

// List handles GET /carts?email=...
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

// Remove handles DELETE /carts/:id.
func (h *Handler) Remove(c *gin.Context) {
	deleted, err := h.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, DeleteResultResponse{DeletedCount: deleted})
}
