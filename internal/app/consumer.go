package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/cart"
	"github.com/atiq9se/bistro-boss-server/internal/config"
	"github.com/atiq9se/bistro-boss-server/internal/messaging/kafka/consumer"
)

// RunConsumer starts the cart-clear consumer: it reads payment events
// from Kafka and removes the cart entries a settled payment covered.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("consumer")
	logger.Info("starting cart consumer")

	client, err := ConnectMongoWithRetry(cfg.MongoURI, 5)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	cartRepo := cart.NewRepository(client.Database(cfg.MongoDatabase).Collection("carts"))
	cartService := cart.NewService(cartRepo)

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		Topic:   "payment.events",
		GroupID: "cart-consumer-group",
	})
	defer reader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeMessages(ctx, reader, cartService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	logger.Info("stopped")

	return nil
}
