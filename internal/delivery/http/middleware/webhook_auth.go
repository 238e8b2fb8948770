package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WebhookAuth authenticates the external driver system by shared secret.
// Constant-time comparison; a bad or missing secret gets 401 before any
// handler or storage code runs.
func WebhookAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-Webhook-Secret")
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid webhook secret"})
			return
		}
		c.Next()
	}
}
