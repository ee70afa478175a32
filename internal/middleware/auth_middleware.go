package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/pkg/response"
	usererrors "github.com/atiq9se/bistro-boss-server/internal/user/errors"
)

// EmailKey is where Authenticate leaves the verified identity for
// downstream handlers.
const EmailKey = "email"

// TokenVerifier is the narrow slice of the token service the gates need.
type TokenVerifier interface {
	VerifyEmail(tokenString string) (string, error)
}

// AdminDirectory answers the capability question "is this email an
// admin". An absent user is reported as usererrors.ErrUserNotFound,
// distinct from a present non-admin.
type AdminDirectory interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

type AccessControl struct {
	tokens TokenVerifier
	admins AdminDirectory
	logger *zap.Logger
}

func NewAccessControl(tokens TokenVerifier, admins AdminDirectory, logger ...*zap.Logger) *AccessControl {
	l := zap.L().Named("middleware.access")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("middleware.access")
	}
	return &AccessControl{tokens: tokens, admins: admins, logger: l}
}

// Authenticate requires an "Authorization: Bearer <token>" header. Both a
// bad signature and an expired token get the same 401 body; the caller is
// never told which one it was.
func (ac *AccessControl) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized access", nil)
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized access", nil)
			c.Abort()
			return
		}

		email, err := ac.tokens.VerifyEmail(parts[1])
		if err != nil {
			ac.logger.Debug("token verification failed", zap.Error(err))
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized access", nil)
			c.Abort()
			return
		}

		c.Set(EmailKey, email)
		c.Next()
	}
}

// RequireAdmin must run after Authenticate. The role is looked up in the
// user store on every request; tokens carry identity only, never role.
func (ac *AccessControl) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		if email == "" {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "forbidden access", nil)
			c.Abort()
			return
		}

		isAdmin, err := ac.admins.IsAdmin(c.Request.Context(), email)
		if err != nil {
			if errors.Is(err, usererrors.ErrUserNotFound) {
				// unknown identity is forbidden, same as non-admin
				response.Error(c, http.StatusForbidden, "FORBIDDEN", "forbidden access", nil)
				c.Abort()
				return
			}
			ac.logger.Error("admin lookup failed", zap.String("email", email), zap.Error(err))
			response.FromError(c, err)
			c.Abort()
			return
		}

		if !isAdmin {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "forbidden access", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSelf must run after Authenticate. The named path parameter has
// to match the authenticated identity. Identity check only, no role
// lookup.
func (ac *AccessControl) RequireSelf(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		if email == "" || c.Param(param) != email {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "forbidden access", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
