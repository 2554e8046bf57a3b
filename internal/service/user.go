package service

import (
	"context"
	"errors"

	"github.com/taskhub/todo-service/internal/models"
	"github.com/taskhub/todo-service/internal/repository"
	"github.com/taskhub/todo-service/pkg/password"
)

// UserService exposes operations on the caller's own account.
type UserService interface {
	Get(ctx context.Context, id int64) (*models.User, error)
	ChangePassword(ctx context.Context, id int64, current, newPassword string) error
}

type userService struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
}

// NewUserService creates a new UserService instance.
func NewUserService(userRepo repository.UserRepository, hasher *password.Hasher) UserService {
	return &userService{
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func (s *userService) Get(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword re-verifies the current password before storing a new hash.
// A wrong current password is reported as ErrInvalidCredentials.
func (s *userService) ChangePassword(ctx context.Context, id int64, current, newPassword string) error {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !s.hasher.Verify(current, user.HashedPassword) {
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, id, hash)
}
