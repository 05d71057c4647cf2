package middleware

import (
	"net/http"
	"strings"

	"github.com/leadflowbr/leadflow_end/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and stores the claims in the context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"code":    "MISSING_TOKEN",
			})
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
				"code":    "MISSING_TOKEN",
			})
			return
		}

		claims, err := utils.ParseToken(token)
		if err != nil {
			utils.Logger.Warn().Err(err).Msg("token validation failed")
			// expired/invalid session: client must sign out and re-authenticate
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid token: " + err.Error(),
				"code":    "INVALID_TOKEN",
			})
			return
		}

		if claims["id"] == nil || claims["role"] == nil {
			utils.Logger.Warn().Interface("claims", claims).Msg("token payload missing required fields")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "token missing required claims",
				"code":    "INVALID_TOKEN",
			})
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}
