package middleware

import (
	"testing"

	"photo-share-server/internal/config"
	"photo-share-server/internal/model"
	"photo-share-server/internal/repository"
	"photo-share-server/internal/service"
	"photo-share-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testServices *service.Services

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)
	testServices = service.NewServices(repository.NewRepositories(gdb))
	return gdb
}

// withConfigEnv 设置环境变量并重载配置，测试结束后恢复原状。
func withConfigEnv(t *testing.T, kv map[string]string) {
	t.Helper()
	saved := make([]testutils.SavedEnv, 0, len(kv))
	for k, v := range kv {
		saved = append(saved, testutils.SetEnv(k, v))
	}
	config.InitConfig("")
	t.Cleanup(func() {
		testutils.RestoreEnv(saved)
		config.InitConfig("")
	})
}

func mustCreateVerifiedUser(t *testing.T, gdb *gorm.DB, email string, role model.Role) *model.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.DefaultCost)
	u := &model.User{
		Username: "tester",
		Email:    email,
		Password: string(hashed),
		Role:     role,
		Verified: true,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}
