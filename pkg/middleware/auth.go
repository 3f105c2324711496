package middleware

import (
	"net/http"
	"strings"

	"traders-bloc/pkg/jwt"

	"github.com/gin-gonic/gin"
)

// Role names as they appear in token claims. SuperAdminRole satisfies every
// role requirement, so the coarse route gate and the per-operation gate agree
// on the hierarchy.
const (
	AdminRole      = "ADMIN"
	SuperAdminRole = "SUPER_ADMIN"
)

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwtService.ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Next()
	}
}

// RequireRoleRedirect is the coarse path-prefix gate. It redirects rather
// than returning a structured error; the per-operation gate stays
// authoritative.
func RequireRoleRedirect(requiredRole, redirectTo string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("user_role")
		if role != requiredRole && role != SuperAdminRole {
			c.Redirect(http.StatusFound, redirectTo)
			c.Abort()
			return
		}
		c.Next()
	}
}
