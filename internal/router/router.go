package router

import (
	"photo-share-server/internal/config"
	"photo-share-server/internal/handler"
	"photo-share-server/internal/middleware"
	"photo-share-server/internal/service"
	"time"

	"github.com/gin-gonic/gin"
)

type Router struct {
	handler  *handler.Handler
	services *service.Services
}

func NewRouter(h *handler.Handler, services *service.Services) *Router {
	return &Router{
		handler:  h,
		services: services,
	}
}

func (rt *Router) Init(r *gin.Engine) {
	r.Use(middleware.SecurityHeaders())

	api := r.Group("/api")
	api.Use(middleware.BodyLimitMiddleware())

	// 认证类路由共用同一个限流实例，保持额度一致
	authLimiter := middleware.AuthRateLimitMiddleware()
	auth := middleware.JWTAuth(rt.services.Auth)

	resetInterval := time.Duration(config.Get().RateLimit.PasswordResetIntervalSeconds) * time.Second

	registerAuthRoutes(api, authLimiter, resetInterval, rt.handler)
	registerUserRoutes(api, auth, rt.handler)
	registerPhotoRoutes(api, auth, rt.handler)
	registerRatingRoutes(api, auth, rt.handler)
	registerCommentRoutes(api, auth, rt.handler)
	registerTagRoutes(api, auth, rt.handler)
	registerAdminRoutes(api, auth, rt.handler)
}
