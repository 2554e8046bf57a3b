package service

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhub/todo-service/internal/models"
	"github.com/taskhub/todo-service/internal/repository"
)

// =============================================================================
// Get Tests
// =============================================================================

func TestUserGet(t *testing.T) {
	stored := &models.User{ID: 1, Username: "alice", IsActive: true}
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			if id == 1 {
				return stored, nil
			}
			return nil, repository.ErrNotFound
		},
	}

	service := NewUserService(repo, testHasher())

	user, err := service.Get(context.Background(), 1)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("Username = %q, want %q", user.Username, "alice")
	}

	if _, err := service.Get(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(99) error = %v, want ErrNotFound", err)
	}
}

// =============================================================================
// ChangePassword Tests
// =============================================================================

func TestChangePassword_Success(t *testing.T) {
	stored := &models.User{
		ID:             1,
		Username:       "alice",
		HashedPassword: hashPassword(t, "Secret123"),
		IsActive:       true,
	}

	var updatedHash string
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return stored, nil
		},
		updatePasswordFunc: func(ctx context.Context, id int64, hashedPassword string) error {
			updatedHash = hashedPassword
			return nil
		},
	}

	service := NewUserService(repo, testHasher())

	if err := service.ChangePassword(context.Background(), 1, "Secret123", "NewSecret456"); err != nil {
		t.Fatalf("ChangePassword() error = %v", err)
	}

	if updatedHash == "" {
		t.Fatal("UpdatePassword was never called")
	}
	if updatedHash == "NewSecret456" {
		t.Error("plaintext password was persisted")
	}
	if !testHasher().Verify("NewSecret456", updatedHash) {
		t.Error("stored hash does not verify against the new password")
	}
}

func TestChangePassword_WrongCurrentPassword(t *testing.T) {
	stored := &models.User{
		ID:             1,
		HashedPassword: hashPassword(t, "Secret123"),
	}
	updateCalled := false
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return stored, nil
		},
		updatePasswordFunc: func(ctx context.Context, id int64, hashedPassword string) error {
			updateCalled = true
			return nil
		},
	}

	service := NewUserService(repo, testHasher())

	err := service.ChangePassword(context.Background(), 1, "WrongPass", "NewSecret456")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ChangePassword() error = %v, want ErrInvalidCredentials", err)
	}
	if updateCalled {
		t.Error("password was updated despite a failed verification")
	}
}

func TestChangePassword_UnknownUser(t *testing.T) {
	repo := &mockUserRepository{
		findByIDFunc: func(ctx context.Context, id int64) (*models.User, error) {
			return nil, repository.ErrNotFound
		},
	}

	service := NewUserService(repo, testHasher())

	err := service.ChangePassword(context.Background(), 42, "Secret123", "NewSecret456")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("ChangePassword() error = %v, want ErrInvalidCredentials", err)
	}
}
