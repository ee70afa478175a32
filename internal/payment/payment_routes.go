package payment

import (
	"github.com/gin-gonic/gin"

	"github.com/atiq9se/bistro-boss-server/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	// Intent creation hits the gateway, so throttle it per IP even
	// though the route itself is open.
	r.POST("/create-payment-intent",
		middleware.RateLimitByIP(1, 3),
		handler.CreateIntent,
	)

	r.POST("/payments", handler.Settle)
	r.GET("/payments/:email", handler.History)
}
