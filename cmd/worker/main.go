package main

import (
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/app"
	"github.com/atiq9se/bistro-boss-server/internal/config"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunWorker(cfg); err != nil {
		logger.Fatal("worker failed", zap.Error(err))
	}
}
