package cart

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Add(ctx context.Context, req AddItemRequest) (string, error)
	ListByEmail(ctx context.Context, email string) ([]Item, error)
	Remove(ctx context.Context, id string) (int64, error)

	// CountOwned and RemoveSettled back the checkout orchestrator and
	// the cart-clear consumer.
	CountOwned(ctx context.Context, email string, ids []string) (int64, error)
	RemoveSettled(ctx context.Context, email string, ids []string) (int64, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("cart.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.service")
	}
	return &service{
		repo:     repo,
		validate: validator.New(),
		logger:   l,
	}
}

func (s *service) Add(ctx context.Context, req AddItemRequest) (string, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}

	return s.repo.Insert(ctx, Item{
		Email:      req.Email,
		MenuItemID: req.MenuItemID,
		Name:       req.Name,
		Image:      req.Image,
		Price:      req.Price,
	})
}

func (s *service) ListByEmail(ctx context.Context, email string) ([]Item, error) {
	return s.repo.FindByEmail(ctx, email)
}

func (s *service) Remove(ctx context.Context, id string) (int64, error) {
	return s.repo.DeleteByID(ctx, id)
}

func (s *service) CountOwned(ctx context.Context, email string, ids []string) (int64, error) {
	return s.repo.CountOwned(ctx, email, ids)
}

// RemoveSettled deletes the cart entries covered by a completed payment.
// Deleting already-gone ids is a no-op, which keeps the reconciliation
// retry path idempotent.
func (s *service) RemoveSettled(ctx context.Context, email string, ids []string) (int64, error) {
	deleted, err := s.repo.DeleteOwned(ctx, email, ids)
	if err != nil {
		return 0, err
	}
	s.logger.Info("cart entries cleared",
		zap.String("email", email),
		zap.Int("requested", len(ids)),
		zap.Int64("deleted", deleted),
	)
	return deleted, nil
}
