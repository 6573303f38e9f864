package handler

import (
	"os"
	"testing"

	"photo-share-server/internal/config"
	"photo-share-server/internal/testutils"
)

// 测试内容：为 handler 包测试初始化配置环境并在结束时清理。
func TestMain(m *testing.M) {
	tmpDir, err := os.MkdirTemp("", "photo-share-config-*")
	if err != nil {
		panic(err)
	}
	uploadDir, err := os.MkdirTemp("", "photo-share-uploads-*")
	if err != nil {
		panic(err)
	}

	envs := []testutils.SavedEnv{
		testutils.SetEnv("PHOTO_SHARE_SERVER_MODE", "debug"),
		testutils.SetEnv("PHOTO_SHARE_JWT_SECRET", "test_secret"),
		testutils.SetEnv("PHOTO_SHARE_REDIS_ENABLED", "false"),
		testutils.SetEnv("PHOTO_SHARE_SMTP_ENABLED", "false"),
		testutils.SetEnv("PHOTO_SHARE_CAPTCHA_ENABLED", "false"),
		testutils.SetEnv("PHOTO_SHARE_UPLOAD_PATH", uploadDir),
	}
	config.InitConfig(tmpDir)

	code := m.Run()

	testutils.RestoreEnv(envs)
	_ = os.RemoveAll(tmpDir)
	_ = os.RemoveAll(uploadDir)
	os.Exit(code)
}
