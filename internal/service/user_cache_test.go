package service

import (
	"testing"
	"time"

	"photo-share-server/internal/model"
)

// 测试内容：缓存写入后可读取，TTL 到期后失效（通过注入时钟推进时间）。
func TestUserCache_TTLExpiry(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewUserCacheWithClock(func() time.Time { return current })

	user := &model.User{ID: 1, Email: "alice@example.com", Username: "alice", Role: model.RoleUser}
	cache.Set(user)

	got, ok := cache.Get("alice@example.com")
	if !ok || got.ID != 1 || got.Username != "alice" {
		t.Fatalf("期望 cache hit, got=%+v ok=%v", got, ok)
	}

	// TTL 内（299s）仍命中
	current = current.Add(299 * time.Second)
	if _, ok := cache.Get("alice@example.com"); !ok {
		t.Fatalf("期望 cache hit within TTL")
	}

	// 超过 300s 后失效
	current = current.Add(2 * time.Second)
	if _, ok := cache.Get("alice@example.com"); ok {
		t.Fatalf("期望 cache miss after TTL")
	}
}

// 测试内容：快照是副本，修改返回值不影响缓存内容。
func TestUserCache_ReturnsCopy(t *testing.T) {
	cache := NewUserCache()
	cache.Set(&model.User{ID: 2, Email: "bob@example.com", Role: model.RoleUser})

	first, ok := cache.Get("bob@example.com")
	if !ok {
		t.Fatalf("期望 cache hit")
	}
	first.Role = model.RoleAdmin

	second, ok := cache.Get("bob@example.com")
	if !ok {
		t.Fatalf("期望 cache hit")
	}
	if second.Role != model.RoleUser {
		t.Fatalf("期望 cached role unchanged，实际为 %q", second.Role)
	}
}

// 测试内容：Invalidate 立即移除快照。
func TestUserCache_Invalidate(t *testing.T) {
	cache := NewUserCache()
	cache.Set(&model.User{ID: 3, Email: "carol@example.com"})

	cache.Invalidate("carol@example.com")
	if _, ok := cache.Get("carol@example.com"); ok {
		t.Fatalf("期望 cache miss after invalidate")
	}
}

// 测试内容：封禁/角色变更在 TTL 窗口内对缓存读取不可见（既定的陈旧容忍）。
func TestUserCache_StaleWindowTolerated(t *testing.T) {
	current := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cache := NewUserCacheWithClock(func() time.Time { return current })

	cache.Set(&model.User{ID: 4, Email: "dave@example.com", Role: model.RoleUser})

	// 数据库里的角色已变化，但缓存未失效时读到的仍是旧快照
	current = current.Add(100 * time.Second)
	got, ok := cache.Get("dave@example.com")
	if !ok || got.Role != model.RoleUser {
		t.Fatalf("期望 stale snapshot within TTL, got=%+v ok=%v", got, ok)
	}
}
