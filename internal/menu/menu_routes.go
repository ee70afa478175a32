package menu

import (
	"github.com/gin-gonic/gin"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, ac *middleware.AccessControl) {
	items := r.Group("/menu")
	{
		// Public reads.
		items.GET("", handler.List)
		items.GET("/:id", handler.Get)

		// Menu mutations are admin dashboard operations.
		admin := items.Group("")
		admin.Use(ac.Authenticate(), ac.RequireAdmin())
		{
			admin.POST("", handler.Create)
			admin.PATCH("/:id", handler.Update)
			admin.DELETE("/:id", handler.Delete)
		}
	}
}
