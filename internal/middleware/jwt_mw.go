package middleware

import (
	"net/http"
	"strings"

	"portfolio_api/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthEmailKey = "authEmail"
	AuthRoleKey  = "authRole"
)

// JWTAuthMiddleware creates a middleware for JWT authentication.
// Failure bodies stay generic: the caller never learns whether the token was
// missing a signature, expired, or simply absent.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token provided"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
			return
		}

		// Set the verified identity in context for downstream handlers
		c.Set(AuthEmailKey, claims.Email)
		c.Set(AuthRoleKey, claims.Role)

		c.Next()
	}
}
