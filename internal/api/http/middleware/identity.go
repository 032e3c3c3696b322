package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const anonymousUser = "anonymous"

// IdentityMiddleware resolves the calling user from the X-User-Id header.
// Credential storage and real authentication live outside this service; the
// header is a pass-through from the desktop client.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if user == "" {
			user = anonymousUser
		}
		c.Set("user_id", user)
		c.Next()
	}
}
