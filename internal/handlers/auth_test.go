package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-service/internal/models"
	"github.com/taskhub/todo-service/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	registerFunc func(ctx context.Context, req service.RegisterRequest) (*models.User, error)
	loginFunc    func(ctx context.Context, username, plaintext string) (*service.TokenResponse, error)
}

func (m *mockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
	if m.registerFunc != nil {
		return m.registerFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, username, plaintext string) (*service.TokenResponse, error) {
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, plaintext)
	}
	return nil, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func createJSONContext(method, path string, body interface{}) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var bodyBytes []byte
	if body != nil {
		bodyBytes, _ = json.Marshal(body)
	}

	c.Request = httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func createFormContext(method, path string, form url.Values) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Request = httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	c.Request.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return w, c
}

func validRegisterBody() RegisterRequest {
	return RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		FirstName: "Alice",
		LastName:  "Smith",
		Password:  "Secret123",
		Role:      "user",
	}
}

// =============================================================================
// Register Handler Tests
// =============================================================================

func TestRegister_Success(t *testing.T) {
	mockService := &mockAuthService{
		registerFunc: func(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
			return &models.User{
				ID:             1,
				Username:       req.Username,
				Email:          req.Email,
				FirstName:      req.FirstName,
				LastName:       req.LastName,
				HashedPassword: "$2a$10$should.never.leave.the.server",
				Role:           req.Role,
				IsActive:       true,
			}, nil
		},
	}

	handler := NewAuthHandler(mockService)
	w, c := createJSONContext("POST", "/auth/", validRegisterBody())

	handler.Register(c)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusCreated)
	}

	body := w.Body.String()
	if strings.Contains(body, "hashed_password") || strings.Contains(body, "$2a$") {
		t.Errorf("response leaks the password hash: %s", body)
	}

	var user models.User
	if err := json.Unmarshal(w.Body.Bytes(), &user); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if user.Username != "alice" {
		t.Errorf("username = %q, want alice", user.Username)
	}
	if !user.IsActive {
		t.Error("expected is_active=true")
	}
}

func TestRegister_Conflict(t *testing.T) {
	mockService := &mockAuthService{
		registerFunc: func(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
			return nil, service.ErrConflict
		},
	}

	handler := NewAuthHandler(mockService)
	w, c := createJSONContext("POST", "/auth/", validRegisterBody())

	handler.Register(c)

	if w.Code != http.StatusConflict {
		t.Errorf("status = %d, want %d", w.Code, http.StatusConflict)
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RegisterRequest)
	}{
		{name: "missing username", mutate: func(r *RegisterRequest) { r.Username = "" }},
		{name: "missing password", mutate: func(r *RegisterRequest) { r.Password = "" }},
		{name: "invalid email", mutate: func(r *RegisterRequest) { r.Email = "not-an-email" }},
		{name: "missing role", mutate: func(r *RegisterRequest) { r.Role = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			mockService := &mockAuthService{
				registerFunc: func(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
					called = true
					return nil, nil
				},
			}

			body := validRegisterBody()
			tt.mutate(&body)

			handler := NewAuthHandler(mockService)
			w, c := createJSONContext("POST", "/auth/", body)

			handler.Register(c)

			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
			}
			if called {
				t.Error("service was called despite a validation failure")
			}
		})
	}
}

// =============================================================================
// Login Handler Tests
// =============================================================================

func TestLogin_Success(t *testing.T) {
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, plaintext string) (*service.TokenResponse, error) {
			return &service.TokenResponse{
				AccessToken: "token123",
				TokenType:   "bearer",
				Role:        "user",
			}, nil
		},
	}

	handler := NewAuthHandler(mockService)
	w, c := createFormContext("POST", "/auth/token", url.Values{
		"username": {"alice"},
		"password": {"Secret123"},
	})

	handler.Login(c)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var response service.TokenResponse
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response.AccessToken != "token123" {
		t.Errorf("access_token = %q, want token123", response.AccessToken)
	}
	if response.TokenType != "bearer" {
		t.Errorf("token_type = %q, want bearer", response.TokenType)
	}
	if response.Role != "user" {
		t.Errorf("role = %q, want user", response.Role)
	}
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockService := &mockAuthService{
		loginFunc: func(ctx context.Context, username, plaintext string) (*service.TokenResponse, error) {
			return nil, service.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(mockService)

	// Wrong password and unknown user must produce byte-identical responses.
	var bodies []string
	for _, form := range []url.Values{
		{"username": {"alice"}, "password": {"WrongPass"}},
		{"username": {"nobody"}, "password": {"Secret123"}},
	} {
		w, c := createFormContext("POST", "/auth/token", form)
		handler.Login(c)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
		}
		bodies = append(bodies, w.Body.String())
	}

	if bodies[0] != bodies[1] {
		t.Errorf("error shapes differ: %q vs %q", bodies[0], bodies[1])
	}
}

func TestLogin_MissingFields(t *testing.T) {
	tests := []struct {
		name string
		form url.Values
	}{
		{name: "missing username", form: url.Values{"password": {"Secret123"}}},
		{name: "missing password", form: url.Values{"username": {"alice"}}},
		{name: "empty form", form: url.Values{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewAuthHandler(&mockAuthService{})
			w, c := createFormContext("POST", "/auth/token", tt.form)

			handler.Login(c)

			if w.Code != http.StatusUnprocessableEntity {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnprocessableEntity)
			}
		})
	}
}
