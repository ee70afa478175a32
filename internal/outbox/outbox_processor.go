package outbox

import (
	"context"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Processor is the reconciliation half of the checkout saga: events the
// request path could not complete inline stay PENDING and are replayed
// through Kafka until a consumer clears the cart.
type Processor struct {
	repo   Repository
	writer *kafka.Writer
	logger *zap.Logger
}

func NewProcessor(repo Repository, writer *kafka.Writer, logger ...*zap.Logger) *Processor {
	l := zap.L().Named("outbox.processor")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("outbox.processor")
	}
	return &Processor{repo: repo, writer: writer, logger: l}
}

func (p *Processor) Start(ctx context.Context) {
	ticker := time.NewTicker(5 * time.Second)
	defer ticker.Stop()

	p.logger.Info("outbox processor started")

	for {
		select {
		case <-ticker.C:
			if err := p.processPending(ctx); err != nil {
				p.logger.Error("outbox poll failed", zap.Error(err))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (p *Processor) processPending(ctx context.Context) error {
	events, err := p.repo.ListPending(ctx, 10)
	if err != nil {
		return err
	}

	for _, e := range events {
		msg := kafka.Message{
			Key:   []byte(e.ID),
			Value: e.Payload,
			Headers: []kafka.Header{
				{Key: "event_type", Value: []byte(e.EventType)},
			},
		}

		if err := p.writer.WriteMessages(ctx, msg); err != nil {
			p.logger.Error("kafka publish failed", zap.String("event_id", e.ID), zap.Error(err))
			continue
		}

		if err := p.repo.MarkSent(ctx, e.ID); err != nil {
			p.logger.Error("mark sent failed", zap.String("event_id", e.ID), zap.Error(err))
		}
	}

	return nil
}
