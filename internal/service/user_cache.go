package service

import (
	"context"
	"encoding/json"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"
	"sync"
	"time"
)

// UserCache 以邮箱为键缓存用户快照，TTL 见 consts.UserCacheTTL。
// 优先使用 Redis（JSON 序列化），Redis 未启用时退回进程内 sync.Map。
//
// 读到的快照允许最长 300 秒的陈旧：封禁、角色变更在窗口内可能不可见。
// 这是有意保留的行为，调用方不应试图绕过缓存拿强一致数据。
type UserCache struct {
	local sync.Map // email -> cachedUser
	now   func() time.Time
}

type cachedUser struct {
	User      model.User
	ExpiresAt time.Time
}

func NewUserCache() *UserCache {
	return &UserCache{now: time.Now}
}

// NewUserCacheWithClock 注入时钟，供 TTL 相关测试使用
func NewUserCacheWithClock(now func() time.Time) *UserCache {
	return &UserCache{now: now}
}

func (c *UserCache) Get(email string) (*model.User, bool) {
	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		key := RedisKey("auth", "user", email)
		payload, err := redisClient.Get(ctx, key).Bytes()
		if err == nil {
			var user model.User
			if jsonErr := json.Unmarshal(payload, &user); jsonErr == nil {
				return &user, true
			}
			// 反序列化失败的脏数据直接丢弃
			_ = redisClient.Del(ctx, key).Err()
		}
		return nil, false
	}

	val, ok := c.local.Load(email)
	if !ok {
		return nil, false
	}
	cached, typeOk := val.(cachedUser)
	if !typeOk {
		c.local.Delete(email)
		return nil, false
	}
	if c.now().After(cached.ExpiresAt) {
		c.local.Delete(email)
		return nil, false
	}
	user := cached.User
	return &user, true
}

func (c *UserCache) Set(user *model.User) {
	if user == nil || user.Email == "" {
		return
	}

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		payload, err := json.Marshal(user)
		if err != nil {
			return
		}
		key := RedisKey("auth", "user", user.Email)
		_ = redisClient.Set(ctx, key, payload, consts.UserCacheTTL).Err()
		return
	}

	c.local.Store(user.Email, cachedUser{
		User:      *user,
		ExpiresAt: c.now().Add(consts.UserCacheTTL),
	})
}

// Invalidate 主动失效某个用户的快照（改头像、改密码后调用）
func (c *UserCache) Invalidate(email string) {
	c.local.Delete(email)

	if redisClient := GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Del(ctx, RedisKey("auth", "user", email)).Err()
	}
}
