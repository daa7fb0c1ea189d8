package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"sayarti/internal/auth"
	"sayarti/internal/services"
)

const (
	userIDKey = "auth_user_id"
	roleKey   = "auth_role"
	nameKey   = "auth_name"
)

// RequireAuth validates the bearer token and stores the caller identity in
// the context for GetScope.
func RequireAuth(svc *auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "authorization header missing",
				"request_id": GetRequestID(c),
			})
			return
		}

		claims, err := svc.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      err.Error(),
				"request_id": GetRequestID(c),
			})
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(roleKey, claims.Role)
		c.Set(nameKey, claims.Name)
		c.Next()
	}
}

// GetScope returns the authorization scope of the authenticated caller.
func GetScope(c *gin.Context) services.AuthScope {
	scope := services.AuthScope{}
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(int64); ok {
			scope.UserID = id
		}
	}
	if v, ok := c.Get(roleKey); ok {
		if role, ok := v.(string); ok {
			scope.IsAdmin = strings.EqualFold(role, "admin")
		}
	}
	return scope
}
