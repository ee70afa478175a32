package user

import (
	"github.com/gin-gonic/gin"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, ac *middleware.AccessControl) {
	users := r.Group("/users")
	{
		// Registration is open but throttled per IP against bot signups.
		users.POST("",
			middleware.RateLimitByIP(0.5, 2),
			handler.Register,
		)

		users.GET("",
			ac.Authenticate(),
			ac.RequireAdmin(),
			handler.List,
		)

		// Self-check only: the path email must match the token.
		users.GET("/admin/:email",
			ac.Authenticate(),
			ac.RequireSelf("email"),
			handler.AdminCheck,
		)

		// Promotion and deletion are admin mutations and are gated as
		// such; only an existing admin may mint another admin.
		users.PATCH("/admin/:id",
			ac.Authenticate(),
			ac.RequireAdmin(),
			handler.Promote,
		)

		users.DELETE("/:id",
			ac.Authenticate(),
			ac.RequireAdmin(),
			handler.Remove,
		)
	}
}
