package token

import (
	"github.com/gin-gonic/gin"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	// Token minting is cheap to call and attractive to bots, so keep the
	// per-IP limit tight. 1 rps with a small burst is plenty for a real
	// client that refreshes once an hour.
	r.POST("/jwt",
		middleware.RateLimitByIP(1, 3),
		handler.Issue,
	)
}
