package config

import (
	"os"
	"testing"
)

// 测试内容：验证初始化配置会设置默认值并写入可用的配置目录。
func TestInitConfig_SetsDefaults(t *testing.T) {
	dir := t.TempDir()

	// 确保不在 release 模式（release 模式下不安全的 secret 可能导致 fatal）。
	t.Setenv("PHOTO_SHARE_SERVER_MODE", "debug")
	t.Setenv("PHOTO_SHARE_JWT_SECRET", "")
	t.Setenv("PHOTO_SHARE_JWT_ALGORITHM", "HS256")

	InitConfig(dir)

	cfg := Get()
	if cfg.Server.Port == "" {
		t.Fatalf("期望 default server.port to be set")
	}
	if cfg.JWT.Secret == "" {
		t.Fatalf("期望 JWT secret to be set in non-release mode")
	}
	if cfg.JWT.AccessExpireMins != 15 {
		t.Fatalf("期望 default access expire 15min，实际为 %d", cfg.JWT.AccessExpireMins)
	}
	if cfg.JWT.RefreshExpireHours != 168 {
		t.Fatalf("期望 default refresh expire 168h，实际为 %d", cfg.JWT.RefreshExpireHours)
	}
	if GetConfigDir() != dir {
		t.Fatalf("期望 config dir %q，实际为 %q", dir, GetConfigDir())
	}

	// 写入一个配置文件名以确保目录可写（测试的基本健全性检查）。
	if err := os.WriteFile(dir+string(os.PathSeparator)+"_test_write", []byte("ok"), 0644); err != nil {
		t.Fatalf("期望 temp config dir to be writable: %v", err)
	}
}

// 测试内容：HS512 属于允许的签名算法，规范化为大写存储。
func TestInitConfig_AcceptsHS512(t *testing.T) {
	dir := t.TempDir()

	t.Setenv("PHOTO_SHARE_SERVER_MODE", "debug")
	t.Setenv("PHOTO_SHARE_JWT_SECRET", "test_secret")
	t.Setenv("PHOTO_SHARE_JWT_ALGORITHM", "hs512")

	InitConfig(dir)

	if got := Get().JWT.Algorithm; got != "HS512" {
		t.Fatalf("期望 algorithm HS512，实际为 %q", got)
	}
}
