package menu

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/response"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(s *Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("menu.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("menu.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Get(c *gin.Context) {
	item, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, item)
}

func (h *Handler) Create(c *gin.Context) {
	var req UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	id, err := h.service.Create(c.Request.Context(), Item{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		h.logger.Error("menu create failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, InsertResultResponse{InsertedID: id})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpsertItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	matched, modified, err := h.service.Update(c.Request.Context(), c.Param("id"), Item{
		Name:     req.Name,
		Recipe:   req.Recipe,
		Image:    req.Image,
		Category: req.Category,
		Price:    req.Price,
	})
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, UpdateResultResponse{MatchedCount: matched, ModifiedCount: modified})
}

func (h *Handler) Delete(c *gin.Context) {
	deleted, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, DeleteResultResponse{DeletedCount: deleted})
}
