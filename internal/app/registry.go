package app

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/cart"
	"github.com/atiq9se/bistro-boss-server/internal/config"
	"github.com/atiq9se/bistro-boss-server/internal/gateway"
	"github.com/atiq9se/bistro-boss-server/internal/menu"
	"github.com/atiq9se/bistro-boss-server/internal/middleware"
	"github.com/atiq9se/bistro-boss-server/internal/outbox"
	"github.com/atiq9se/bistro-boss-server/internal/payment"
	"github.com/atiq9se/bistro-boss-server/internal/review"
	"github.com/atiq9se/bistro-boss-server/internal/stats"
	"github.com/atiq9se/bistro-boss-server/internal/token"
	"github.com/atiq9se/bistro-boss-server/internal/user"
)

func registerModules(router *gin.Engine, db *mongo.Database, rdb *redis.Client, cfg config.Config) {
	// --- Repositories ---
	userRepo := user.NewRepository(db.Collection("users"))
	menuRepo := menu.NewRepository(db.Collection("menu"))
	reviewRepo := review.NewRepository(db.Collection("reviews"))
	cartRepo := cart.NewRepository(db.Collection("carts"))
	paymentRepo := payment.NewRepository(db.Collection("payments"))
	outboxRepo := outbox.NewRepository(db.Collection("outbox"))

	// --- Services ---
	tokenService := token.NewService([]byte(cfg.JWTSecret), token.DefaultTTL)
	userService := user.NewService(userRepo)
	menuService := menu.NewService(menuRepo, rdb)
	cartService := cart.NewService(cartRepo)
	stripeService := gateway.NewStripeService(cfg.StripeSecretKey)
	paymentService := payment.NewService(payment.Deps{
		Gateway: stripeService,
		Repo:    paymentRepo,
		Carts:   cartService,
		Outbox:  outboxRepo,
		Logger:  zap.L().Named("payment.service"),
	})
	statsService := stats.NewService(stats.NewRepository(
		db.Collection("users"),
		db.Collection("menu"),
		db.Collection("payments"),
	), rdb)

	// --- Access control ---
	ac := middleware.NewAccessControl(tokenService, userService)

	// --- Handlers ---
	tokenHandler := token.NewHandler(tokenService)
	userHandler := user.NewHandler(userService)
	menuHandler := menu.NewHandler(menuService)
	reviewHandler := review.NewHandler(reviewRepo)
	cartHandler := cart.NewHandler(cartService)
	paymentHandler := payment.NewHandler(paymentService)
	statsHandler := stats.NewHandler(statsService)

	// --- Routes Registration ---
	// Routes hang off the root; the deployed frontend expects no /api
	// prefix.
	api := router.Group("")
	{
		token.RegisterRoutes(api, tokenHandler)
		user.RegisterRoutes(api, userHandler, ac)
		menu.RegisterRoutes(api, menuHandler, ac)
		review.RegisterRoutes(api, reviewHandler, ac)
		cart.RegisterRoutes(api, cartHandler)
		payment.RegisterRoutes(api, paymentHandler)
		stats.RegisterRoutes(api, statsHandler, ac)
	}

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "boss is sitting")
	})
}
