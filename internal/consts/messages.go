package consts

// API 返回给客户端的提示文案，保持与既有客户端约定一致。

const (
	MsgNotFound        = "Not found"
	MsgPhotoNotFound   = "Photo not found"
	MsgUserNotFound    = "User not found"
	MsgCommentNotFound = "Comment not found"
	MsgTagNotFound     = "Tag not found"
	MsgRatingNotFound  = "Rating not found!"
	MsgTooManyTags     = "Too many tags!"
	MsgNotBanUser      = "Not found banned user"
	MsgConflictRole    = "The role conflict"

	MsgAccountExists          = "Account already exists!"
	MsgEmailNotVerified       = "Email not verified!"
	MsgInvalidRegistration    = "Invalid registration information!"
	MsgIncorrectRegistration  = "Incorrect registration information!"
	MsgInvalidRefreshToken    = "Invalid refresh token!"
	MsgInvalidScopeToken      = "Invalid scope for token!"
	MsgInvalidCredentials     = "Could not validate credentials!"
	MsgInvalidEmailToken      = "Invalid token for email verification!"
	MsgVerificationError      = "Verification error!"
	MsgEmailAlreadyVerified   = "Your email is already verified!"
	MsgEmailVerified          = "Email verified!"
	MsgEmailAlreadyConfirmed  = "Your email is already confirmed!"
	MsgCheckEmailConfirmation = "Check your email for confirmation."
	MsgBannedUser             = "You are banned!"
	MsgResetPasswordError     = "Reset password error!"
	MsgPasswordNotMatch       = "Password doesn't match"
	MsgOperationForbidden     = "Operation forbidden!"
	MsgInvalidCaptcha         = "Invalid captcha!"
)
