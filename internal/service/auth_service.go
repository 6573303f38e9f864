package service

import (
	"errors"
	"fmt"
	"log"
	"photo-share-server/internal/common"
	"photo-share-server/internal/config"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"
	"photo-share-server/internal/utils"

	"gorm.io/gorm"
)

// TokenPair 登录/刷新成功后返回的令牌对
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// RegisterUser 创建新用户。邮箱冲突返回 409；
// 验证邮件为尽力而为，发送失败只记录日志，不影响注册。
func (s *AuthService) RegisterUser(username, email, password string) (*model.User, error) {
	exists, err := s.userStore.EmailExists(email)
	if err != nil {
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}
	if exists {
		return nil, common.NewConflictError(consts.MsgAccountExists)
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, common.NewInternalError("注册失败，请稍后重试")
	}

	user := &model.User{
		Username: username,
		Email:    email,
		Password: hashed,
		Avatar:   utils.GravatarURL(email, 250),
		Role:     model.RoleUser,
	}

	// 首个注册用户自动成为管理员
	count, err := s.userStore.CountAll()
	if err == nil && count == 0 {
		user.Role = model.RoleAdmin
	}

	if err := s.userStore.Create(user); err != nil {
		return nil, common.NewConflictError(consts.MsgAccountExists)
	}

	// 后台发送验证邮件，失败不回滚注册
	go func(u model.User) {
		if mailErr := s.sendVerificationMail(&u); mailErr != nil {
			log.Printf("⚠️ 发送验证邮件失败 (%s): %v", u.Email, mailErr)
		}
	}(*user)

	return user, nil
}

// LoginUser 校验凭证并签发令牌对。
// 检查顺序：用户存在 → 未被封禁 → 邮箱已验证 → 密码匹配。
func (s *AuthService) LoginUser(email, password string) (*TokenPair, error) {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewUnauthorizedError(consts.MsgInvalidRegistration)
		}
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}

	banned, err := s.banStore.Exists(user.ID)
	if err != nil {
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}
	if banned {
		return nil, common.NewUnauthorizedError(consts.MsgBannedUser)
	}

	if !user.Verified {
		return nil, common.NewUnauthorizedError(consts.MsgEmailNotVerified)
	}

	if !utils.VerifyPassword(password, user.Password) {
		return nil, common.NewUnauthorizedError(consts.MsgIncorrectRegistration)
	}

	return s.issueTokenPair(user)
}

// RefreshTokens 用刷新令牌换新令牌对。
// 提交的令牌必须与库里存的一致；不一致视为已被轮换或泄露，清空存量令牌并拒绝。
func (s *AuthService) RefreshTokens(refreshToken string) (*TokenPair, error) {
	email, err := utils.ParseRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidScope) {
			return nil, common.NewUnauthorizedError(consts.MsgInvalidScopeToken)
		}
		return nil, common.NewUnauthorizedError(consts.MsgInvalidCredentials)
	}

	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return nil, common.NewUnauthorizedError(consts.MsgInvalidCredentials)
	}

	if user.RefreshToken != refreshToken {
		_ = s.userStore.UpdateRefreshToken(user.ID, "")
		return nil, common.NewUnauthorizedError(consts.MsgInvalidRefreshToken)
	}

	return s.issueTokenPair(user)
}

// issueTokenPair 签发访问+刷新令牌并轮换存储的刷新令牌
func (s *AuthService) issueTokenPair(user *model.User) (*TokenPair, error) {
	accessToken, err := utils.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}
	refreshToken, err := utils.GenerateRefreshToken(user.Email)
	if err != nil {
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}

	if err := s.userStore.UpdateRefreshToken(user.ID, refreshToken); err != nil {
		return nil, common.NewInternalError("登录失败，请稍后重试")
	}

	return &TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// CurrentUserByToken 解析访问令牌并解析出用户。
// 先查缓存快照（TTL 300s），未命中再回源数据库并回填。
func (s *AuthService) CurrentUserByToken(token string) (*model.User, error) {
	email, err := utils.ParseAccessToken(token)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidScope) {
			return nil, common.NewUnauthorizedError(consts.MsgInvalidScopeToken)
		}
		return nil, common.NewUnauthorizedError(consts.MsgInvalidCredentials)
	}

	if cached, ok := s.cache.Get(email); ok {
		return cached, nil
	}

	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return nil, common.NewUnauthorizedError(consts.MsgInvalidCredentials)
	}

	s.cache.Set(user)
	return user, nil
}

// VerifyEmail 处理验证链接。返回 alreadyVerified 表示重复点击。
func (s *AuthService) VerifyEmail(token string) (bool, error) {
	email, err := utils.ParseEmailToken(token)
	if err != nil {
		return false, common.NewEmailTokenError(consts.MsgInvalidEmailToken)
	}

	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return false, common.NewValidationError(consts.MsgVerificationError)
	}
	if user.Verified {
		return true, nil
	}

	if err := s.userStore.MarkVerified(email); err != nil {
		return false, common.NewInternalError(consts.MsgVerificationError)
	}
	s.cache.Invalidate(email)
	return false, nil
}

// RequestEmailVerification 重发验证邮件。
// 无论邮箱是否存在都返回成功文案，避免探测注册邮箱。
func (s *AuthService) RequestEmailVerification(email string) (string, error) {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return consts.MsgCheckEmailConfirmation, nil
	}
	if user.Verified {
		return consts.MsgEmailAlreadyConfirmed, nil
	}

	go func(u model.User) {
		if mailErr := s.sendVerificationMail(&u); mailErr != nil {
			log.Printf("⚠️ 发送验证邮件失败 (%s): %v", u.Email, mailErr)
		}
	}(*user)

	return consts.MsgCheckEmailConfirmation, nil
}

// RequestPasswordReset 发送重置密码链接（同样不暴露邮箱是否存在）
func (s *AuthService) RequestPasswordReset(email string) error {
	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return nil
	}

	go func(u model.User) {
		token, tokenErr := utils.GenerateEmailToken(u.Email)
		if tokenErr != nil {
			log.Printf("⚠️ 生成重置令牌失败 (%s): %v", u.Email, tokenErr)
			return
		}
		resetURL := fmt.Sprintf("%s/api/auth/reset_password/%s", config.Get().Server.BaseURL, token)
		if mailErr := s.email.SendPasswordResetEmail(u.Email, u.Username, resetURL); mailErr != nil {
			log.Printf("⚠️ 发送重置邮件失败 (%s): %v", u.Email, mailErr)
		}
	}(*user)

	return nil
}

// ResetPassword 重置密码：token 为邮件里的重置令牌，两次输入必须一致（相等比较）。
func (s *AuthService) ResetPassword(token, password1, password2 string) error {
	if password1 != password2 {
		return common.NewUnauthorizedError(consts.MsgPasswordNotMatch)
	}

	email, err := utils.ParseEmailToken(token)
	if err != nil {
		return common.NewEmailTokenError(consts.MsgInvalidEmailToken)
	}

	user, err := s.userStore.FindByEmail(email)
	if err != nil {
		return common.NewValidationError(consts.MsgResetPasswordError)
	}

	hashed, err := utils.HashPassword(password1)
	if err != nil {
		return common.NewInternalError(consts.MsgResetPasswordError)
	}

	if err := s.userStore.UpdatePasswordByEmail(email, hashed); err != nil {
		return common.NewInternalError(consts.MsgResetPasswordError)
	}

	// 旧的刷新令牌与缓存快照一并作废
	_ = s.userStore.UpdateRefreshToken(user.ID, "")
	s.cache.Invalidate(email)

	go func(u model.User) {
		if mailErr := s.email.SendPasswordChangedEmail(u.Email, u.Username); mailErr != nil {
			log.Printf("⚠️ 发送密码变更通知失败 (%s): %v", u.Email, mailErr)
		}
	}(*user)

	return nil
}

// VerifyCaptchaChallenge 校验验证码；未启用验证码时直接放行
func (s *AuthService) VerifyCaptchaChallenge(captchaID, answer string) (bool, string) {
	if !config.Get().Captcha.Enabled {
		return true, ""
	}
	if captchaID == "" || answer == "" {
		return false, consts.MsgInvalidCaptcha
	}
	if !utils.VerifyCaptcha(captchaID, answer) {
		return false, consts.MsgInvalidCaptcha
	}
	return true, ""
}

func (s *AuthService) sendVerificationMail(user *model.User) error {
	token, err := utils.GenerateEmailToken(user.Email)
	if err != nil {
		return err
	}
	verifyURL := fmt.Sprintf("%s/api/auth/verified_email/%s", config.Get().Server.BaseURL, token)
	return s.email.SendVerificationEmail(user.Email, user.Username, verifyURL)
}
