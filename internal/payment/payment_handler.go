package payment

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
	l := zap.L().Named("payment.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payment.handler")
	}
	return &Handler{service: s, logger: l}
}

// CreateIntent handles POST /create-payment-intent.
func (h *Handler) CreateIntent(c *gin.Context) {
	var req CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	intent, err := h.service.CreateIntent(c.Request.Context(), req.Price)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, CreateIntentResponse{ClientSecret: intent.ClientSecret})
}

// Settle handles POST /payments. A 201 with a failed DeleteResult means
// the payment is recorded but cart cleanup is still pending.
func (h *Handler) Settle(c *gin.Context) {
	var req SettleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	res, err := h.service.Settle(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("settle failed", zap.String("email", req.Email), zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, res)
}

// History handles GET /payments/:email.
func (h *Handler) History(c *gin.Context) {
	records, err := h.service.History(c.Request.Context(), c.Param("email"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, records)
}
