package payment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/atiq9se/bistro-boss-server/internal/cart"
	carterrors "github.com/atiq9se/bistro-boss-server/internal/cart/errors"
	"github.com/atiq9se/bistro-boss-server/internal/gateway"
	"github.com/atiq9se/bistro-boss-server/internal/outbox"
	paymenterrors "github.com/atiq9se/bistro-boss-server/internal/payment/errors"
)

const intentCurrency = "usd"

// MinorUnits converts a dollars-and-cents price to integer cents. The
// conversion truncates toward zero on purpose: 9.999 becomes 999, and
// float artifacts like 19.99*100 = 1998.9999... land on 1998. Changing
// this to rounding would silently change charged amounts.
func MinorUnits(price float64) int64 {
	return int64(price * 100)
}

//go:generate mockgen -source=payment_service.go -destination=../mock/payment/payment_service_mock.go -package=mock
type Service interface {
	CreateIntent(ctx context.Context, price float64) (*gateway.Intent, error)
	Settle(ctx context.Context, req SettleRequest) (SettleResponse, error)
	History(ctx context.Context, email string) ([]Record, error)
}

type service struct {
	gateway  gateway.Service
	repo     Repository
	carts    cart.Service
	outbox   outbox.Repository
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	Gateway gateway.Service
	Repo    Repository
	Carts   cart.Service
	Outbox  outbox.Repository
	Logger  *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Gateway == nil {
		panic("payment gateway cannot be nil")
	}
	if deps.Repo == nil {
		panic("payment repository cannot be nil")
	}
	if deps.Carts == nil {
		panic("cart service cannot be nil")
	}
	if deps.Outbox == nil {
		panic("outbox repository cannot be nil")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	return &service{
		gateway:  deps.Gateway,
		repo:     deps.Repo,
		carts:    deps.Carts,
		outbox:   deps.Outbox,
		validate: validator.New(),
		logger:   deps.Logger,
	}
}

// CreateIntent is phase A of checkout: mint a gateway payment intent for
// the given price and hand the client secret back. No local state is
// written; the gateway owns the charge from here.
func (s *service) CreateIntent(ctx context.Context, price float64) (*gateway.Intent, error) {
	if price <= 0 {
		return nil, paymenterrors.ErrInvalidPrice
	}

	amount := MinorUnits(price)
	intent, err := s.gateway.CreateIntent(ctx, amount, intentCurrency)
	if err != nil {
		s.logger.Error("payment intent creation failed",
			zap.Int64("amount_minor", amount),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("payment intent created", zap.Int64("amount_minor", amount))
	return intent, nil
}

// Settle is phase B: persist the payment record, then clear the covered
// cart entries. The two writes are not atomic; a failed cart clear is
// reported in DeleteResult and left as a PENDING outbox event for the
// reconciler to replay.
func (s *service) Settle(ctx context.Context, req SettleRequest) (SettleResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return SettleResponse{}, paymenterrors.ErrInvalidSettleRequest.WithCause(err)
	}

	logger := s.logger.With(
		zap.String("email", req.Email),
		zap.String("transaction_id", req.TransactionID),
	)

	// Replay: the gateway transaction reference is the idempotency key,
	// so a retried settle never records the payment twice.
	if existing, err := s.repo.FindByTransactionID(ctx, req.TransactionID); err != nil {
		return SettleResponse{}, err
	} else if existing != nil {
		logger.Info("settle replayed for existing payment")
		return SettleResponse{
			PaymentResult: PaymentResult{InsertedID: existing.ID.Hex(), Duplicate: true},
			DeleteResult:  DeleteResult{Completed: true},
		}, nil
	}

	// Every cart id must be a live item owned by the paying email.
	owned, err := s.carts.CountOwned(ctx, req.Email, req.CartIDs)
	if err != nil {
		return SettleResponse{}, err
	}
	if owned != int64(len(req.CartIDs)) {
		return SettleResponse{}, carterrors.ErrCartOwnershipMismatch
	}

	insertedID, err := s.repo.Insert(ctx, Record{
		Email:         req.Email,
		Price:         req.Price,
		CartIDs:       req.CartIDs,
		TransactionID: req.TransactionID,
		Status:        req.Status,
		Date:          time.Now(),
	})
	if err != nil {
		logger.Error("payment insert failed", zap.Error(err))
		return SettleResponse{}, err
	}

	eventID := s.recordClearCartEvent(ctx, logger, req)

	res := SettleResponse{
		PaymentResult: PaymentResult{InsertedID: insertedID},
	}

	deleted, err := s.carts.RemoveSettled(ctx, req.Email, req.CartIDs)
	if err != nil {
		// Payment is recorded but the cart still holds the items. Leave
		// the outbox event pending and surface the partial failure.
		logger.Warn("cart clear failed after payment insert", zap.Error(err))
		res.DeleteResult = DeleteResult{Completed: false, Error: err.Error()}
		return res, nil
	}

	if eventID != "" {
		if err := s.outbox.MarkSent(ctx, eventID); err != nil {
			logger.Warn("outbox mark sent failed", zap.String("event_id", eventID), zap.Error(err))
		}
	}

	logger.Info("payment settled", zap.Int64("cart_items_deleted", deleted))
	res.DeleteResult = DeleteResult{DeletedCount: deleted, Completed: true}
	return res, nil
}

// recordClearCartEvent writes the compensation record before the cart
// delete is attempted. Best effort: settle proceeds even if the outbox
// write fails, it only loses the async retry.
func (s *service) recordClearCartEvent(ctx context.Context, logger *zap.Logger, req SettleRequest) string {
	payload, err := json.Marshal(outbox.ClearCartPayload{
		Email:   req.Email,
		CartIDs: req.CartIDs,
	})
	if err != nil {
		return ""
	}

	event := outbox.Event{
		ID:        uuid.NewString(),
		EventType: outbox.EventClearCart,
		Payload:   payload,
		Status:    outbox.StatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.outbox.Create(ctx, event); err != nil {
		logger.Warn("outbox create failed", zap.Error(err))
		return ""
	}
	return event.ID
}

func (s *service) History(ctx context.Context, email string) ([]Record, error) {
	return s.repo.FindByEmail(ctx, email)
}
