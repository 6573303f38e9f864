package service

import (
	"testing"

	"photo-share-server/internal/common"
	"photo-share-server/internal/model"
	"photo-share-server/internal/repository"
	"photo-share-server/internal/testutils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var testServices *Services

func setupTestServices(t *testing.T) *gorm.DB {
	t.Helper()
	gdb := testutils.SetupDB(t)
	testServices = NewServices(repository.NewRepositories(gdb))
	return gdb
}

// mustCreateUser 直接入库一个已验证用户，返回带 ID 的记录
func mustCreateUser(t *testing.T, gdb *gorm.DB, username, email string) *model.User {
	t.Helper()
	hashed, _ := bcrypt.GenerateFromPassword([]byte("abc12345"), bcrypt.DefaultCost)
	u := &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleUser,
		Verified: true,
	}
	if err := gdb.Create(u).Error; err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u
}

func mustCreatePhoto(t *testing.T, gdb *gorm.DB, owner *model.User, title string) *model.Photo {
	t.Helper()
	p := &model.Photo{
		Title:    title,
		FilePath: "/photos/2026/01/01/test.jpg",
		UserID:   owner.ID,
	}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("创建照片失败: %v", err)
	}
	return p
}

func wantServiceError(t *testing.T, err error, code common.ErrorCode) *common.ServiceError {
	t.Helper()
	if err == nil {
		t.Fatalf("期望返回错误")
	}
	svcErr, ok := common.AsServiceError(err)
	if !ok || svcErr.Code != code {
		t.Fatalf("期望 %s 错误, got: %#v (%v)", code, svcErr, err)
	}
	return svcErr
}
