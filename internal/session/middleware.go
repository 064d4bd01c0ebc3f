package session

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionIDContextKey = "session_id"

// Middleware 会话中间件：没有会话 Cookie 时签发一个新的会话 ID
func Middleware(cookieName string, maxAgeSeconds int) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(cookieName)
		if err != nil || strings.TrimSpace(sessionID) == "" {
			sessionID = uuid.NewString()
			c.SetCookie(cookieName, sessionID, maxAgeSeconds, "/", "", false, true)
		}
		c.Set(sessionIDContextKey, sessionID)
		c.Next()
	}
}

// ID 从请求上下文取会话 ID
func ID(c *gin.Context) string {
	value, ok := c.Get(sessionIDContextKey)
	if !ok {
		return ""
	}
	if sessionID, ok := value.(string); ok {
		return sessionID
	}
	return ""
}
