package middleware

import (
	"net/http"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"

	"github.com/gin-gonic/gin"
)

// policyTable 声明每个动作允许的角色。
// 新增受保护操作时在这里加一行，不要在 handler 里写角色判断。
var policyTable = map[string][]model.Role{
	consts.ActionPhotoModerate:   {model.RoleAdmin, model.RoleModerator},
	consts.ActionCommentModerate: {model.RoleAdmin, model.RoleModerator},
	consts.ActionTagManage:       {model.RoleAdmin, model.RoleModerator},
	consts.ActionRatingSummary:   {model.RoleAdmin, model.RoleModerator},
	consts.ActionUserBan:         {model.RoleAdmin},
	consts.ActionUserManage:      {model.RoleAdmin},
}

// Authorize 按策略表检查当前用户角色，必须放在 JWTAuth 之后。
// 未登记的动作一律拒绝。
func Authorize(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
			c.Abort()
			return
		}

		for _, role := range policyTable[action] {
			if user.Role == role {
				c.Next()
				return
			}
		}

		c.JSON(http.StatusForbidden, gin.H{"detail": consts.MsgOperationForbidden})
		c.Abort()
	}
}
