package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hawkerhub/hawker-app/utils"
)

// AuthMiddleware requires a valid bearer token and puts the customer ID
// into the context. Cart and order mutations sit behind this.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil || claims == nil {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid or expired token"))
			c.Abort()
			return
		}
		if claims.CustomerID == 0 {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid customer ID in token"))
			c.Abort()
			return
		}

		c.Set("customer_id", claims.CustomerID)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the customer ID when a token is present
// but lets the request through without one. Cart reads use this: with no
// identity they answer with an empty cart instead of failing.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if claims, err := utils.ParseToken(tokenString); err == nil && claims.CustomerID != 0 {
				c.Set("customer_id", claims.CustomerID)
			}
		}
		c.Next()
	}
}

// CustomerID reads the resolved customer ID out of the context.
func CustomerID(c *gin.Context) (uint, bool) {
	v, exists := c.Get("customer_id")
	if !exists {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok && id != 0
}
