package mw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ev-booking-backend/internal/auth"
)

// UserIDKey is the context key under which RequireAuth stores the
// authenticated user's id.
const UserIDKey = "uid"

// RequireAuth rejects requests that do not carry a valid bearer token.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de autenticação ausente"})
			return
		}

		claims, err := auth.ParseToken(raw, secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token de autenticação inválido"})
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}
