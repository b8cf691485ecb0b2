package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/neocodez/portfolio/models"
	"github.com/neocodez/portfolio/tokens"
)

const (
	ctxUserID = "userID"
	ctxRole   = "role"
)

// Authenticator verifies bearer tokens. *services.AuthService implements it.
type Authenticator interface {
	Authenticate(bearerToken string) (*tokens.Claims, error)
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

func Protect(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := BearerToken(c)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, no token"})
			return
		}

		claims, err := auth.Authenticate(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authorized, token failed"})
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// Identify loads the caller's identity when a valid bearer token is present
// and lets anonymous requests through untouched.
func Identify(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := BearerToken(c); tokenStr != "" {
			if claims, err := auth.Authenticate(tokenStr); err == nil {
				c.Set(ctxUserID, claims.UserID)
				c.Set(ctxRole, claims.Role)
			}
		}
		c.Next()
	}
}

// IsAdmin reports whether Protect or Identify found an admin token.
func IsAdmin(c *gin.Context) bool {
	return Role(c) == models.RoleAdmin
}

// AdminOnly must run after Protect.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !IsAdmin(c) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not authorized as an admin"})
			return
		}
		c.Next()
	}
}

// UserID returns the id Protect stored, or "" outside a protected route.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func Role(c *gin.Context) models.Role {
	v, ok := c.Get(ctxRole)
	if !ok {
		return ""
	}
	role, _ := v.(models.Role)
	return role
}
