package token

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
	l := zap.L().Named("token.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("token.handler")
	}
	return &Handler{service: s, logger: l}
}

// Issue handles POST /jwt.
func (h *Handler) Issue(c *gin.Context) {
	var req IssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	signed, err := h.service.Issue(req.Email)
	if err != nil {
		h.logger.Error("token issue failed", zap.String("email", req.Email), zap.Error(err))
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, IssueResponse{Token: signed})
}
