package handler

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"photo-share-server/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func mustSeedPhoto(t *testing.T, gdb *gorm.DB, userID uint) *model.Photo {
	t.Helper()
	p := &model.Photo{
		Title:    "测试照片",
		FilePath: "/photos/2026/01/01/test.jpg",
		UserID:   userID,
	}
	if err := gdb.Create(p).Error; err != nil {
		t.Fatalf("创建照片失败: %v", err)
	}
	return p
}

func newPNGUpload(t *testing.T, field, filename, title string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	if err := png.Encode(fw, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	if title != "" {
		_ = mw.WriteField("title", title)
	}
	_ = mw.Close()
	return &buf, mw.FormDataContentType()
}

// 测试内容：验证照片上传接口返回 201 并落库。
func TestUploadPhotoHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	token := loginFor(t, "a@example.com")

	r, auth := authedRouter()
	r.POST("/photos", auth, testHandler.UploadPhoto)

	body, contentType := newPNGUpload(t, "file", "pic.png", "海边日落")
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("期望 201，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var photo model.Photo
	_ = json.Unmarshal(w.Body.Bytes(), &photo)
	if photo.ID == 0 || photo.Title != "海边日落" {
		t.Fatalf("非预期返回: %+v", photo)
	}

	var count int64
	gdb.Model(&model.Photo{}).Count(&count)
	if count != 1 {
		t.Fatalf("期望落库 1 条，实际 %d", count)
	}
}

// 测试内容：验证缺少标题时上传返回 400。
func TestUploadPhotoHandler_MissingTitle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	token := loginFor(t, "a@example.com")

	r, auth := authedRouter()
	r.POST("/photos", auth, testHandler.UploadPhoto)

	body, contentType := newPNGUpload(t, "file", "pic.png", "")
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d body=%s", w.Code, w.Body.String())
	}
}

// 测试内容：验证照片详情与不存在照片的 404。
func TestGetPhotoHandler_FoundAndNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	u := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	p := mustSeedPhoto(t, gdb, u.ID)
	token := loginFor(t, "a@example.com")

	r, auth := authedRouter()
	r.GET("/photos/:photo_id", auth, testHandler.GetPhoto)

	req := httptest.NewRequest(http.MethodGet, "/photos/1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	var got model.Photo
	_ = json.Unmarshal(w.Body.Bytes(), &got)
	if got.ID != p.ID {
		t.Fatalf("期望照片 %d，实际 %d", p.ID, got.ID)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/photos/999", nil)
	req2.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusNotFound {
		t.Fatalf("期望 404，实际为 %d", w2.Code)
	}
}

// 测试内容：验证仅作者可更新描述，其他用户返回 403。
func TestUpdatePhotoDescriptionHandler_OwnerOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	owner := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	mustCreateUser(t, gdb, "bob", "b@example.com", model.RoleUser)
	mustSeedPhoto(t, gdb, owner.ID)

	r, auth := authedRouter()
	r.PUT("/photos/:photo_id", auth, testHandler.UpdatePhotoDescription)

	body, _ := json.Marshal(gin.H{"description": "新的描述"})
	req := httptest.NewRequest(http.MethodPut, "/photos/1", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var updated model.Photo
	gdb.First(&updated, 1)
	if updated.Description != "新的描述" {
		t.Fatalf("描述未更新: %q", updated.Description)
	}

	req2 := httptest.NewRequest(http.MethodPut, "/photos/1", bytes.NewReader(body))
	req2.Header.Set("Authorization", "Bearer "+loginFor(t, "b@example.com"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w2.Code)
	}
}

// 测试内容：验证列表只返回当前用户的照片。
func TestListPhotosHandler_OwnScope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	alice := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	bob := mustCreateUser(t, gdb, "bob", "b@example.com", model.RoleUser)
	mustSeedPhoto(t, gdb, alice.ID)
	mustSeedPhoto(t, gdb, alice.ID)
	mustSeedPhoto(t, gdb, bob.ID)

	r, auth := authedRouter()
	r.GET("/photos/all", auth, testHandler.ListPhotos)

	req := httptest.NewRequest(http.MethodGet, "/photos/all", nil)
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}

	var photos []model.Photo
	_ = json.Unmarshal(w.Body.Bytes(), &photos)
	if len(photos) != 2 {
		t.Fatalf("期望 2 张照片，实际 %d", len(photos))
	}
}

// 测试内容：验证二维码接口返回 base64 图像数据。
func TestPhotoQRCodeHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	u := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	mustSeedPhoto(t, gdb, u.ID)

	r, auth := authedRouter()
	r.POST("/photos/:photo_id/qr", auth, testHandler.PhotoQRCode)

	req := httptest.NewRequest(http.MethodPost, "/photos/1/qr", nil)
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w.Code, w.Body.String())
	}

	var resp struct {
		QRCode string `json:"qr_code"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp.QRCode == "" {
		t.Fatal("期望返回 qr_code 字段")
	}
}

// 测试内容：验证上传后可生成指定宽度的缩放变体。
func TestTransformPhotoHandler_Flow(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	token := loginFor(t, "a@example.com")

	r, auth := authedRouter()
	r.POST("/photos", auth, testHandler.UploadPhoto)
	r.POST("/photos/:photo_id/transform", auth, testHandler.TransformPhoto)

	body, contentType := newPNGUpload(t, "file", "pic.png", "海边日落")
	req := httptest.NewRequest(http.MethodPost, "/photos", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("上传失败: %d %s", w.Code, w.Body.String())
	}
	var photo model.Photo
	_ = json.Unmarshal(w.Body.Bytes(), &photo)

	tb, _ := json.Marshal(gin.H{"width": 32})
	req2 := httptest.NewRequest(http.MethodPost, "/photos/1/transform", bytes.NewReader(tb))
	req2.Header.Set("Authorization", "Bearer "+token)
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w2.Code, w2.Body.String())
	}

	var transformed model.Photo
	_ = json.Unmarshal(w2.Body.Bytes(), &transformed)
	if transformed.FilePathTransform == "" {
		t.Fatal("期望生成变体路径")
	}

	// 非法宽度
	tb2, _ := json.Marshal(gin.H{"width": 9999})
	req3 := httptest.NewRequest(http.MethodPost, "/photos/1/transform", bytes.NewReader(tb2))
	req3.Header.Set("Authorization", "Bearer "+token)
	w3 := httptest.NewRecorder()
	r.ServeHTTP(w3, req3)
	if w3.Code != http.StatusBadRequest {
		t.Fatalf("期望 400，实际为 %d", w3.Code)
	}
}

// 测试内容：验证仅作者可删除照片，删除后记录消失。
func TestDeletePhotoHandler_OwnerOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)
	gdb := setupTestDB(t)
	owner := mustCreateUser(t, gdb, "alice", "a@example.com", model.RoleUser)
	mustCreateUser(t, gdb, "bob", "b@example.com", model.RoleUser)
	mustSeedPhoto(t, gdb, owner.ID)

	r, auth := authedRouter()
	r.DELETE("/photos/:photo_id", auth, testHandler.DeletePhoto)

	req := httptest.NewRequest(http.MethodDelete, "/photos/1", nil)
	req.Header.Set("Authorization", "Bearer "+loginFor(t, "b@example.com"))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("期望 403，实际为 %d", w.Code)
	}

	req2 := httptest.NewRequest(http.MethodDelete, "/photos/1", nil)
	req2.Header.Set("Authorization", "Bearer "+loginFor(t, "a@example.com"))
	w2 := httptest.NewRecorder()
	r.ServeHTTP(w2, req2)
	if w2.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d body=%s", w2.Code, w2.Body.String())
	}

	var count int64
	gdb.Model(&model.Photo{}).Count(&count)
	if count != 0 {
		t.Fatalf("期望照片被删除，剩余 %d 条", count)
	}
}
