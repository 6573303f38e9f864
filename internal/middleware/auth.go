package middleware

import (
	"net/http"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"
	"photo-share-server/internal/service"
	"strings"

	"github.com/gin-gonic/gin"
)

const contextUserKey = "user"

// JWTAuth 解析 Authorization 头里的访问令牌并把当前用户放进上下文。
// 用户快照走 AuthService 的缓存（TTL 300s），未命中才查库。
func JWTAuth(authSvc *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
			c.Abort()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
			c.Abort()
			return
		}

		user, err := authSvc.CurrentUserByToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
			c.Abort()
			return
		}

		c.Set(contextUserKey, user)
		c.Next()
	}
}

// CurrentUser 取出 JWTAuth 放进上下文的用户
func CurrentUser(c *gin.Context) (*model.User, bool) {
	value, exists := c.Get(contextUserKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*model.User)
	return user, ok
}
