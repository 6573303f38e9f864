package consts

// 授权动作名，统一由 middleware.Authorize 按策略表检查，
// 不在各 handler 里散落角色判断。
const (
	ActionPhotoModerate   = "photo:moderate"
	ActionCommentModerate = "comment:moderate"
	ActionTagManage       = "tag:manage"
	ActionRatingSummary   = "rating:summary"
	ActionUserBan         = "user:ban"
	ActionUserManage      = "user:manage"
)
