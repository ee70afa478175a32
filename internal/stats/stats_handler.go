package stats

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
	l := zap.L().Named("stats.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("stats.handler")
	}
	return &Handler{service: s, logger: l}
}

// AdminStats handles GET /admin-stats.
func (h *Handler) AdminStats(c *gin.Context) {
	result, err := h.service.AdminStats(c.Request.Context())
	if err != nil {
		h.logger.Error("admin stats failed", zap.Error(err))
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
