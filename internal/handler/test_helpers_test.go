package handler

import (
	"testing"

	"photo-share-server/internal/middleware"
	"photo-share-server/internal/model"
	"photo-share-server/internal/repository"
	"photo-share-server/internal/service"
	"photo-share-server/internal/testutils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	testServices *service.Services
	testHandler  *Handler
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)
	testServices = service.NewServices(repository.NewRepositories(gdb))
	testHandler = NewHandler(testServices)
	return gdb
}

func mustCreateUser(t *testing.T, gdb *gorm.DB, username, email string, role model.Role) *model.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.DefaultCost)
	u := &model.User{
		Username: username,
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

// loginFor 签发并返回用户的访问令牌
func loginFor(t *testing.T, email string) string {
	t.Helper()
	pair, err := testServices.Auth.LoginUser(email, "abc12345")
	if err != nil {
		t.Fatalf("LoginUser(%s): %v", email, err)
	}
	return pair.AccessToken
}

// authedRouter 构造带认证中间件的测试路由
func authedRouter() (*gin.Engine, gin.HandlerFunc) {
	r := gin.New()
	return r, middleware.JWTAuth(testServices.Auth)
}
