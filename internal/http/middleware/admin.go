package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKey guards operator routes. With no key configured they are disabled.
func AdminKey(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if required == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": gin.H{
					"code":    "FORBIDDEN",
					"message": "Admin endpoints are disabled",
				},
			})
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(required)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "Invalid admin key",
				},
			})
			return
		}
		c.Next()
	}
}
