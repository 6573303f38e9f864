package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"photo-share-server/internal/model"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证评论的添加与按时间排序的列表。
func TestCommentHandlers_AddAndList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	u := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	mustSeedPhoto(t, gdb, u.ID)
	token := loginFor(t, "a@example.com")

	r, auth := authedRouter()
	r.POST("/comments/photo/:photo_id", auth, testHandler.AddComment)
	r.GET("/comments/photo/:photo_id", auth, testHandler.ListComments)

	for _, content := range []string{"第一条", "第二条"} {
		body, _ := json.Marshal(gin.H{"content": content})
		req := httptest.NewRequest(http.MethodPost, "/comments/photo/1", bytes.NewReader(body))
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusCreated {
			t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/comments/photo/1?sort=desc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	var comments []model.Comment
	_ = json.Unmarshal(w.Body.Bytes(), &comments)
	if len(comments) != 2 {
		t.Fatalf("期望 2 条评论，实际 %d", len(comments))
	}
	if comments[0].Content != "第二条" {
		t.Fatalf("期望倒序排列，首条为 %q", comments[0].Content)
	}
}

// 测试内容：验证评论仅作者可修改，照片作者也无权改他人评论。
func TestUpdateCommentHandler_AuthorOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	owner := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	author := mustCreateUser(t, gdb, "bob", "b@example.com", model.RoleUser)
	p := mustSeedPhoto(t, gdb, owner.ID)
	comment := &model.Comment{Content: "原始内容", UserID: author.ID, PhotoID: p.ID}
	if err := gdb.Create(comment).Error; err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	r, auth := authedRouter()
	r.PUT("/comments/:comment_id", auth, testHandler.UpdateComment)

	body, _ := json.Marshal(gin.H{"content": "改过的内容"})
	req := httptest.NewRequest(http.MethodPut, "/comments/1", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}

	req2 := httptest.NewRequest(http.MethodPut, "/comments/1", bytes.NewReader(body))
	req2.Header.Set("Authorization", "Bearer "+loginFor(t, "b@example.com"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w2.Code, w2.Body.String())
	}

	var updated model.Comment
	gdb.First(&updated, 1)
	if updated.Content != "改过的内容" {
		t.Fatalf("评论未更新: %q", updated.Content)
	}
}

// 测试内容：验证审核员可删除他人评论，普通路人不可。
func TestDeleteCommentHandler_AuthorOrStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	author := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	mustCreateUser(t, gdb, "bob", "b@example.com", model.RoleUser)
	mustCreateUser(t, gdb, "mod", "m@example.com", model.RoleModerator)
	p := mustSeedPhoto(t, gdb, author.ID)
	comment := &model.Comment{Content: "待删除", UserID: author.ID, PhotoID: p.ID}
	if err := gdb.Create(comment).Error; err != nil {
		t.Fatalf("创建评论失败: %v", err)
	}

	r, auth := authedRouter()
	r.DELETE("/comments/:comment_id", auth, testHandler.DeleteComment)

	req := httptest.NewRequest(http.MethodDelete, "/comments/1", nil)
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "b@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}

	req2 := httptest.NewRequest(http.MethodDelete, "/comments/1", nil)
	req2.Header.Set("Authorization", "Bearer "+loginFor(t, "m@example.com"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w2.Code, w2.Body.String())
	}

	var count int64
	gdb.Model(&model.Comment{}).Count(&count)
	if count != 0 {
		t.Fatalf("期望评论被删除，剩余 %d", count)
	}
}
