package middleware

import (
	"context"
	"net/http"
	"photo-share-server/internal/service"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

var intervalStore sync.Map // key: route+ip, value: time.Time

// IntervalRateMiddleware 固定间隔限流：同一 IP 对同一路由在间隔内只放行一次。
// 用于重置密码这类必须人为慢速的接口。
// Redis 可用时用 SetNX 做跨实例限制，否则退回进程内存。
func IntervalRateMiddleware(interval time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if interval <= 0 {
			c.Next()
			return
		}

		routeKey := c.FullPath()
		ip := c.ClientIP()

		if redisClient := service.GetRedisClient(); redisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			key := service.RedisKey("ratelimit", "interval", routeKey, ip)
			ok, err := redisClient.SetNX(ctx, key, "1", interval).Result()
			if err == nil {
				if !ok {
					c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many requests"})
					c.Abort()
					return
				}
				c.Next()
				return
			}
			// Redis 异常时退回本地限制
		}

		mapKey := routeKey + "|" + ip
		now := time.Now()
		if v, ok := intervalStore.Load(mapKey); ok {
			if last, typeOk := v.(time.Time); typeOk && now.Sub(last) < interval {
				c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many requests"})
				c.Abort()
				return
			}
		}
		intervalStore.Store(mapKey, now)
		c.Next()
	}
}
