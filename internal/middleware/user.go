package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// UserIDHeader 调用方用户标识
	UserIDHeader = "X-User-ID"
	// AnonymousUserID 未携带用户标识时使用
	AnonymousUserID = "anonymous"

	userIDKey = "user_id"
)

// UserMiddleware 从请求头读取用户标识
// 站点无登录，用户标识仅用于区分搜索历史与收藏
func UserMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader))
		if userID == "" || len(userID) > 64 {
			userID = AnonymousUserID
		}
		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID 从上下文获取当前用户ID
func GetUserID(c *gin.Context) string {
	if v, exists := c.Get(userIDKey); exists {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return AnonymousUserID
}
