package review

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
	"github.com/atiq9se/bistro-boss-server/internal/pkg/response"
)

// Reviews are a plain pass-through to the store, so the handler talks to
// the repository directly.
type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("review.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("review.handler")
	}
	return &Handler{repo: repo, logger: l}
}

type createReviewRequest struct {
	Name    string  `json:"name" binding:"required"`
	Details string  `json:"details" binding:"required"`
	Rating  float64 `json:"rating" binding:"required,gte=0,lte=5"`
}

func (h *Handler) List(c *gin.Context) {
	reviews, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) Create(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	id, err := h.repo.Insert(c.Request.Context(), Review{
		Name:    req.Name,
		Details: req.Details,
		Rating:  req.Rating,
		Email:   c.GetString(middleware.EmailKey),
	})
	if err != nil {
		h.logger.Error("review insert failed", zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"insertedId": id})
}
