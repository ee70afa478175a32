package consumer

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/cart"
	"github.com/atiq9se/bistro-boss-server/internal/outbox"
)

// ConsumeMessages drains payment events until the context is cancelled.
// Messages are committed only after their handler succeeds, so a failed
// cart clear is redelivered on the next fetch.
func ConsumeMessages(ctx context.Context, reader *kafka.Reader, carts cart.Service, logger *zap.Logger) {
	logger.Info("consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("fetch message failed", zap.Error(err))
			continue
		}

		eventType := getHeader(msg.Headers, "event_type")

		switch eventType {
		case outbox.EventClearCart:
			if err := handleClearCart(ctx, msg.Value, carts, logger); err != nil {
				logger.Error("clear cart failed", zap.Error(err))
				continue
			}
			if err := reader.CommitMessages(ctx, msg); err != nil {
				logger.Error("commit failed", zap.Error(err))
			}
		default:
			// Unknown events are committed so they do not wedge the
			// partition.
			_ = reader.CommitMessages(ctx, msg)
		}
	}
}
