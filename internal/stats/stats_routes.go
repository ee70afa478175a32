package stats

import (
	"github.com/gin-gonic/gin"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, ac *middleware.AccessControl) {
	r.GET("/admin-stats",
		ac.Authenticate(),
		ac.RequireAdmin(),
		handler.AdminStats,
	)
}
