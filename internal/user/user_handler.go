package user

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
	"github.com/atiq9se/bistro-boss-server/internal/pkg/response"
	usererrors "github.com/atiq9se/bistro-boss-server/internal/user/errors"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(s *Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{service: s, logger: l}
}

// Register handles POST /users.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid input", err.Error())
		return
	}

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.logger.Error("register failed", zap.String("email", req.Email), zap.Error(err))
		response.FromError(c, err)
		return
	}

	status := http.StatusCreated
	if res.InsertedID == nil {
		status = http.StatusOK
	}
	response.Success(c, status, res)
}

// List handles GET /users (admin only).
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, users)
}

// AdminCheck handles GET /users/admin/:email. The RequireSelf gate has
// already matched the path email against the token, so an absent user
// here simply means "not admin".
func (h *Handler) AdminCheck(c *gin.Context) {
	email := c.Param("email")

	isAdmin, err := h.service.IsAdmin(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, usererrors.ErrUserNotFound) {
			response.Success(c, http.StatusOK, AdminCheckResponse{Admin: false})
			return
		}
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, AdminCheckResponse{Admin: isAdmin})
}

// Promote handles PATCH /users/admin/:id (admin only).
func (h *Handler) Promote(c *gin.Context) {
	res, err := h.service.Promote(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.logger.Info("admin promotion",
		zap.String("target_id", c.Param("id")),
		zap.String("promoted_by", c.GetString(middleware.EmailKey)),
	)
	response.Success(c, http.StatusOK, res)
}

// Remove handles DELETE /users/:id (admin only).
func (h *Handler) Remove(c *gin.Context) {
	res, err := h.service.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, res)
}
