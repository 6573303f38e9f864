package router

import (
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"
	"time"

	"github.com/gin-gonic/gin"
)

func registerAuthRoutes(api *gin.RouterGroup, authLimiter gin.HandlerFunc, resetInterval time.Duration, h *handler.Handler) {
	api.POST("/auth/signup", authLimiter, h.Signup)
	api.POST("/auth/login", authLimiter, h.Login)
	api.GET("/auth/refresh_token", h.RefreshToken)

	api.GET("/auth/verified_email/:token", h.VerifiedEmail)
	api.POST("/auth/request_email", authLimiter, h.RequestEmail)

	// 重置密码请求按固定间隔限流（默认 1 次 / 20s）
	resetLimiter := middleware.IntervalRateMiddleware(resetInterval)
	api.POST("/auth/send_reset_password", resetLimiter, h.SendResetPassword)
	api.POST("/auth/reset_password", h.ResetPassword)

	api.GET("/auth/captcha", authLimiter, h.Captcha)
}
