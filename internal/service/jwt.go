// Package service contains the business logic for the todo service.
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSecretLength is the minimum HMAC secret size in bytes.
const minSecretLength = 32

// Claims represents the identity assertion embedded in an access token.
// The username rides in the registered "sub" claim.
type Claims struct {
	UserID int64  `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTService issues and validates signed access tokens.
type JWTService interface {
	GenerateAccessToken(userID int64, username, role string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
	GetAccessExpiry() time.Duration
}

type jwtService struct {
	secret       string
	accessExpiry time.Duration
}

// NewJWTService creates a new JWTService instance. It returns nil if the
// secret is shorter than 32 bytes.
func NewJWTService(secret string, accessExpiry time.Duration) JWTService {
	if len(secret) < minSecretLength {
		return nil
	}
	return &jwtService{
		secret:       secret,
		accessExpiry: accessExpiry,
	}
}

func (s *jwtService) GenerateAccessToken(userID int64, username, role string) (string, error) {
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.accessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

func (s *jwtService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	// Subject and user id are mandatory; a structurally valid token
	// without them carries no usable identity.
	if claims.Subject == "" || claims.UserID == 0 {
		return nil, errors.New("missing identity claims")
	}

	return claims, nil
}

func (s *jwtService) GetAccessExpiry() time.Duration {
	return s.accessExpiry
}
