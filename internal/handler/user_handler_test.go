package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"photo-share-server/internal/model"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证 /me 返回当前用户且密码不外泄。
func TestMeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)

	r, auth := authedRouter()
	r.GET("/users/me", auth, testHandler.Me)

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	var me model.User
	_ = json.Unmarshal(w.Body.Bytes(), &me)
	if me.Email != "a@example.com" || me.Username != "alice" {
		t.Fatalf("非预期用户: %+v", me)
	}
	if strings.Contains(w.Body.String(), "password") {
		t.Fatal("响应不应包含密码字段")
	}
}

// 测试内容：验证头像上传生成新头像路径并写回用户。
func TestUpdateAvatarHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	u := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	before := u.Avatar

	r, auth := authedRouter()
	r.PATCH("/users/avatar", auth, testHandler.UpdateAvatar)

	body, contentType := newPNGUpload(t, "file", "avatar.png", "")
	req := httptest.NewRequest(http.MethodPatch, "/users/avatar", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var updated model.User
	gdb.First(&updated, u.ID)
	if updated.Avatar == "" || updated.Avatar == before {
		t.Fatalf("期望头像更新，实际 %q", updated.Avatar)
	}

	// 缺少文件字段
	req2 := httptest.NewRequest(http.MethodPatch, "/users/avatar", nil)
	req2.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w2.Code)
	}
}
