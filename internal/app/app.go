package app

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/atiq9se/bistro-boss-server/internal/config"
)

// BuildApp connects the infrastructure and registers every module on the
// router. It owns connection order; callers own process lifecycle.
func BuildApp(router *gin.Engine, cfg config.Config) error {
	client, err := ConnectMongoWithRetry(cfg.MongoURI, 5)
	if err != nil {
		return err
	}
	db := client.Database(cfg.MongoDatabase)

	rdb, err := ConnectRedisWithRetry(cfg.RedisAddr, 5)
	if err != nil {
		return err
	}

	router.Use(cors.Default())

	registerModules(router, db, rdb, cfg)

	return nil
}
