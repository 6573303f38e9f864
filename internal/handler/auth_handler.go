package handler

import (
	"net/http"
	"photo-share-server/internal/common/httpx"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/utils"
	"strings"

	"github.com/gin-gonic/gin"
)

// Signup 注册新用户，注册成功即发验证邮件
func (h *Handler) Signup(c *gin.Context) {
	var req struct {
		Username      string `json:"username" binding:"required"`
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required"`
		CaptchaID     string `json:"captcha_id"`
		CaptchaAnswer string `json:"captcha_answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": consts.MsgInvalidRegistration})
		return
	}

	if ok, msg := utils.ValidateUsername(req.Username); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
		return
	}
	if ok, msg := utils.ValidatePassword(req.Password); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
		return
	}
	if verified, msg := h.services.Auth.VerifyCaptchaChallenge(req.CaptchaID, req.CaptchaAnswer); !verified {
		c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
		return
	}

	user, err := h.services.Auth.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Signup failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":   user,
		"detail": consts.MsgCheckEmailConfirmation,
	})
}

// Login 校验凭证并返回令牌对
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Email         string `json:"email" binding:"required,email"`
		Password      string `json:"password" binding:"required"`
		CaptchaID     string `json:"captcha_id"`
		CaptchaAnswer string `json:"captcha_answer"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": consts.MsgInvalidRegistration})
		return
	}

	if verified, msg := h.services.Auth.VerifyCaptchaChallenge(req.CaptchaID, req.CaptchaAnswer); !verified {
		c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
		return
	}

	pair, err := h.services.Auth.LoginUser(req.Email, req.Password)
	if err != nil {
		httpx.WriteServiceError(c, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, pair)
}

// RefreshToken 刷新令牌放在 Authorization 头里提交
func (h *Handler) RefreshToken(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": consts.MsgInvalidCredentials})
		return
	}

	pair, err := h.services.Auth.RefreshTokens(parts[1])
	if err != nil {
		httpx.WriteServiceError(c, err, "Refresh failed")
		return
	}

	c.JSON(http.StatusOK, pair)
}

// VerifiedEmail 处理邮件里的验证链接
func (h *Handler) VerifiedEmail(c *gin.Context) {
	token := c.Param("token")

	alreadyVerified, err := h.services.Auth.VerifyEmail(token)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgVerificationError)
		return
	}

	if alreadyVerified {
		c.JSON(http.StatusOK, gin.H{"message": consts.MsgEmailAlreadyVerified})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": consts.MsgEmailVerified})
}

// RequestEmail 重发验证邮件
func (h *Handler) RequestEmail(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": consts.MsgInvalidRegistration})
		return
	}

	message, err := h.services.Auth.RequestEmailVerification(req.Email)
	if err != nil {
		httpx.WriteServiceError(c, err, consts.MsgVerificationError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// SendResetPassword 请求重置密码邮件
func (h *Handler) SendResetPassword(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": consts.MsgInvalidRegistration})
		return
	}

	if err := h.services.Auth.RequestPasswordReset(req.Email); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgResetPasswordError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": consts.MsgCheckEmailConfirmation})
}

// ResetPassword 执行重置，两次输入必须一致
func (h *Handler) ResetPassword(c *gin.Context) {
	var req struct {
		Token     string `json:"token" binding:"required"`
		Password1 string `json:"password1" binding:"required"`
		Password2 string `json:"password2" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": consts.MsgInvalidRegistration})
		return
	}

	if ok, msg := utils.ValidatePassword(req.Password1); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"detail": msg})
		return
	}

	if err := h.services.Auth.ResetPassword(req.Token, req.Password1, req.Password2); err != nil {
		httpx.WriteServiceError(c, err, consts.MsgResetPasswordError)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password reset!"})
}

// Captcha 下发图形验证码（未启用时返回 404）
func (h *Handler) Captcha(c *gin.Context) {
	id, b64s, _, err := utils.MakeCaptcha()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Failed to generate captcha"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"captcha_id": id, "captcha_image": b64s})
}
