// Package middleware provides HTTP middleware for the todo service.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/taskhub/todo-service/internal/service"
)

// identityKey is the gin context key holding the resolved Identity.
const identityKey = "identity"

// Identity is the authenticated caller extracted from a bearer token.
type Identity struct {
	UserID   int64
	Username string
	Role     string
}

// RequireAuth returns middleware that resolves the Authorization header into
// an Identity and aborts with 401 otherwise. A missing header, a malformed
// header, a forged signature and an expired token all produce the same
// response body, so the failure mode is not observable from outside.
func RequireAuth(jwtService service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		claims, err := jwtService.ValidateToken(token)
		if err != nil {
			abortUnauthorized(c)
			return
		}

		c.Set(identityKey, Identity{
			UserID:   claims.UserID,
			Username: claims.Subject,
			Role:     claims.Role,
		})
		c.Next()
	}
}

// CurrentIdentity returns the Identity resolved by RequireAuth. The boolean
// is false on routes that did not pass through the middleware.
func CurrentIdentity(c *gin.Context) (Identity, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	identity, ok := value.(Identity)
	return identity, ok
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"detail": service.ErrInvalidCredentials.Error(),
	})
}
