package review

import (
	"github.com/gin-gonic/gin"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, ac *middleware.AccessControl) {
	reviews := r.Group("/reviews")
	{
		reviews.GET("", handler.List)

		// Writing a review takes typing time; a tight per-user limit
		// keeps spam bots out.
		reviews.POST("",
			ac.Authenticate(),
			middleware.RateLimitByUser(0.1, 2),
			handler.Create,
		)
	}
}
