package consts

import "time"

const (
	ApplicationName    = "Photo Share Server"
	ApplicationVersion = "1.2.0"
)

const (
	// TokenScopeAccess / TokenScopeRefresh 区分两类令牌，防止互相替用
	TokenScopeAccess  = "access_token"
	TokenScopeRefresh = "refresh_token"

	// UserCacheTTL 用户快照缓存有效期。
	// 封禁/角色变更最长在该窗口内不可见，属于既定的取舍，不要改成强一致。
	UserCacheTTL = 300 * time.Second

	// EmailTokenTTL 邮箱验证 / 密码重置链接令牌有效期
	EmailTokenTTL = 7 * 24 * time.Hour

	// MaxTagsPerPhoto 单张照片的标签数量上限
	MaxTagsPerPhoto = 5
)

const (
	// MaxRequestBodyMB 普通接口请求体上限
	MaxRequestBodyMB = 2
	// MaxUploadSizeMB 图片上传接口请求体上限
	MaxUploadSizeMB = 10
)
