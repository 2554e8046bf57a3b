package service

import (
	"context"
	"errors"

	"github.com/taskhub/todo-service/internal/models"
	"github.com/taskhub/todo-service/internal/repository"
	"github.com/taskhub/todo-service/pkg/password"
)

var (
	// ErrInvalidCredentials covers every authentication failure: unknown
	// username, wrong password, and invalid or expired tokens. Callers
	// never learn which one it was.
	ErrInvalidCredentials = errors.New("invalid authentication credentials")

	// ErrConflict is returned when a unique field is already taken.
	ErrConflict = errors.New("username or email already registered")

	// ErrNotFound is returned when a resource does not exist or does not
	// belong to the caller. The two cases are deliberately indistinguishable.
	ErrNotFound = errors.New("not found")
)

// RegisterRequest carries the fields needed to create an account.
type RegisterRequest struct {
	Username  string
	Email     string
	FirstName string
	LastName  string
	Password  string
	Role      string
}

// TokenResponse is the result of a successful login.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        string `json:"role"`
}

// AuthService handles registration and credential verification.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, username, plaintext string) (*TokenResponse, error)
}

type authService struct {
	userRepo   repository.UserRepository
	jwtService JWTService
	hasher     *password.Hasher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(userRepo repository.UserRepository, jwtService JWTService, hasher *password.Hasher) AuthService {
	return &authService{
		userRepo:   userRepo,
		jwtService: jwtService,
		hasher:     hasher,
	}
}

// Register hashes the plaintext password and stores a new active user.
// There is no application-level uniqueness pre-check: a duplicate username
// or email surfaces as the store's unique-constraint violation, mapped to
// ErrConflict.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       req.Username,
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		HashedPassword: hash,
		Role:           req.Role,
		IsActive:       true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrConflict
		}
		return nil, err
	}

	return user, nil
}

// Login verifies the password and issues a bearer token. Unknown usernames
// and wrong passwords produce the identical error, so the endpoint cannot
// be used to enumerate accounts.
func (s *authService) Login(ctx context.Context, username, plaintext string) (*TokenResponse, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !s.hasher.Verify(plaintext, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        user.Role,
	}, nil
}
