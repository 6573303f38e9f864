package service

import (
	"context"
	"fmt"
	"log"
	"photo-share-server/internal/config"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis 在这里只做加速层：用户缓存的共享层和限流的跨实例计数。
// 连不上就整体退回进程内实现，不影响任何功能语义。

const redisPingTimeout = 2 * time.Second

var (
	redisOnce   sync.Once
	redisClient *redis.Client
)

// GetRedisClient 懒加载共享客户端。未启用配置或启动探活失败时始终返回 nil，
// 调用方据此走本地路径。
func GetRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.Get()
		if !cfg.Redis.Enabled {
			return
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			log.Printf("⚠️ Redis 探活失败，本进程改用内存缓存与本地限流: %v", err)
			return
		}

		redisClient = client
		log.Printf("✅ Redis 加速层就绪: %s (db=%d)", cfg.Redis.Addr, cfg.Redis.DB)
	})
	return redisClient
}

// RedisKey 按 "<prefix>:<part>:<part>..." 拼接键名，前缀取自配置。
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "photo_share"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

// CloseRedisClient 在进程退出时释放连接；从未连上时是空操作。
func CloseRedisClient() error {
	if redisClient == nil {
		return nil
	}
	if err := redisClient.Close(); err != nil {
		return fmt.Errorf("关闭 Redis 连接失败: %w", err)
	}
	return nil
}
