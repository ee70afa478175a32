package consumer

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/cart"
	"github.com/atiq9se/bistro-boss-server/internal/outbox"
)

func handleClearCart(ctx context.Context, payload []byte, carts cart.Service, logger *zap.Logger) error {
	var data outbox.ClearCartPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return err
	}

	deleted, err := carts.RemoveSettled(ctx, data.Email, data.CartIDs)
	if err != nil {
		return err
	}

	logger.Info("cart cleared",
		zap.String("email", data.Email),
		zap.Int64("deleted", deleted),
	)
	return nil
}
