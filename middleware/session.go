package middleware

import (
	"net/http"
	"strings"

	"turfadmin/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionAuthMiddleware validates the Bearer session JWT, resolves the live
// session from Redis, and puts it on the context for handlers. A token whose
// session is gone (logout, expiry) is rejected even if its signature is valid.
func SessionAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sessionID, err := utils.ExtractSessionIDFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid session token"})
			return
		}

		sess, err := utils.GetAdminSession(c.Request.Context(), utils.GetSessionCacheClient(), sessionID)
		if err != nil {
			zap.L().Warn("Session lookup failed", zap.String("sessionID", sessionID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session expired or revoked"})
			return
		}

		c.Set("session", sess)
		c.Next()
	}
}
