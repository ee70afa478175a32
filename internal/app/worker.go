package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/config"
	"github.com/atiq9se/bistro-boss-server/internal/outbox"
)

// RunWorker starts the outbox processor: it polls PENDING payment events
// out of MongoDB and replays them into Kafka until interrupted.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("worker")
	logger.Info("starting outbox processor")

	client, err := ConnectMongoWithRetry(cfg.MongoURI, 5)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	if err := ConnectKafkaWithRetry(cfg.KafkaBroker, 5); err != nil {
		return err
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBroker),
		Topic:    "payment.events",
		Balancer: &kafka.LeastBytes{},
	}
	defer writer.Close()

	outboxRepo := outbox.NewRepository(client.Database(cfg.MongoDatabase).Collection("outbox"))
	processor := outbox.NewProcessor(outboxRepo, writer)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go processor.Start(ctx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	cancel()
	time.Sleep(1 * time.Second)
	logger.Info("stopped")

	return nil
}
