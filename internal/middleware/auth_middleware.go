// internal/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"queuely-service/internal/pkg/jwt"
	"queuely-service/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const profileIDKey = "profile_id"

type AuthMiddleware struct {
	verifier       *jwt.Verifier
	serviceKeyHash string
}

func NewAuthMiddleware(verifier *jwt.Verifier, serviceKeyHash string) *AuthMiddleware {
	return &AuthMiddleware{
		verifier:       verifier,
		serviceKeyHash: serviceKeyHash,
	}
}

// Auth validates the bearer token and puts the profile id on the context.
func (m *AuthMiddleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.Error(c, http.StatusUnauthorized, "missing authorization token", nil)
			return
		}

		claims, err := m.verifier.Verify(token)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid or expired token", err)
			return
		}

		c.Set(profileIDKey, claims.ProfileID)
		c.Next()
	}
}

// ServiceAuth authenticates trusted internal callers via the X-Service-Key
// header. Used for the entitlement check endpoints other services call on a
// profile's behalf; those requests carry the profile id in the payload.
func (m *AuthMiddleware) ServiceAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-Service-Key")
		if key == "" {
			response.Error(c, http.StatusUnauthorized, "missing service key", nil)
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(m.serviceKeyHash), []byte(key)); err != nil {
			response.Error(c, http.StatusUnauthorized, "invalid service key", nil)
			return
		}

		c.Next()
	}
}

// AuthOrService accepts either a bearer token or a valid service key.
func (m *AuthMiddleware) AuthOrService() gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader("X-Service-Key"); key != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(m.serviceKeyHash), []byte(key)); err != nil {
				response.Error(c, http.StatusUnauthorized, "invalid service key", nil)
				return
			}
			c.Next()
			return
		}

		m.Auth()(c)
	}
}

// extractToken extracts the Bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return parts[1]
		}
	}
	return ""
}
