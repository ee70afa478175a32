package cart

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	carts := r.Group("/carts")
	{
		carts.POST("", handler.Add)
		carts.GET("", handler.List)
		carts.DELETE("/:id", handler.Remove)
	}
}
