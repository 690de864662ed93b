package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backroom-api/internal/handler/httperr"
	"backroom-api/internal/pkg/jwt"
)

const (
	roleContextKey = "admin_role"
	bearerPrefix   = "Bearer "
)

// AuthMiddleware guards the admin surface. Tokens are issued out of band and
// presented as a standard bearer header.
type AuthMiddleware struct {
	jwtService *jwt.Service
}

func NewAuthMiddleware(jwtService *jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			httperr.AbortWithError(c, http.StatusUnauthorized, jwt.ErrInvalidToken, "Authentication required", nil)
			return
		}

		claims, err := m.jwtService.ValidateToken(strings.TrimPrefix(header, bearerPrefix))
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}
		if claims.Role != jwt.RoleAdmin {
			httperr.AbortWithError(c, http.StatusForbidden, jwt.ErrInvalidToken, "Admin access required", nil)
			return
		}

		c.Set(roleContextKey, claims.Role)
		c.Next()
	}
}

func RoleFromContext(c *gin.Context) string {
	if role, exists := c.Get(roleContextKey); exists {
		if r, ok := role.(string); ok {
			return r
		}
	}
	return ""
}
