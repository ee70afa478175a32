package user

import (
	"context"
	"errors"

	"go.uber.org/zap"

	usererrors "github.com/atiq9se/bistro-boss-server/internal/user/errors"
)

type Service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) *Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &Service{repo: repo, logger: l}
}

// Register is idempotent: re-registering an existing email is a no-op
// that reports "user already exists" with a null inserted id.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, usererrors.ErrUserNotFound) {
		return RegisterResponse{}, err
	}
	if existing != nil {
		return RegisterResponse{InsertedID: nil, Message: "user already exists"}, nil
	}

	id, err := s.repo.Insert(ctx, User{
		Email: req.Email,
		Name:  req.Name,
		Role:  RoleMember,
	})
	if err != nil {
		return RegisterResponse{}, err
	}

	s.logger.Info("user registered", zap.String("email", req.Email))
	return RegisterResponse{InsertedID: &id}, nil
}

func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.FindAll(ctx)
}

// IsAdmin reports whether the email holds the admin role. An absent user
// surfaces as usererrors.ErrUserNotFound so callers can treat "no such
// user" differently from "member".
func (s *Service) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.Role == RoleAdmin, nil
}

// Promote grants the admin role. Route-level gating ensures only an
// existing admin can reach this.
func (s *Service) Promote(ctx context.Context, id string) (UpdateResultResponse, error) {
	matched, modified, err := s.repo.SetRole(ctx, id, RoleAdmin)
	if err != nil {
		return UpdateResultResponse{}, err
	}
	s.logger.Info("user promoted to admin", zap.String("user_id", id))
	return UpdateResultResponse{MatchedCount: matched, ModifiedCount: modified}, nil
}

func (s *Service) Remove(ctx context.Context, id string) (DeleteResultResponse, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return DeleteResultResponse{}, err
	}
	s.logger.Info("user deleted", zap.String("user_id", id))
	return DeleteResultResponse{DeletedCount: deleted}, nil
}
