package service

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"photo-share-server/internal/common"
	"photo-share-server/internal/config"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"
	"photo-share-server/internal/utils"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
	"gorm.io/gorm"
)

// UploadPhoto 保存上传文件到本地存储并落库。
// 文件名使用 uuid，按日期分目录（2026/03/01/xxx.jpg）。
func (s *PhotoService) UploadPhoto(title, description string, fileHeader *multipart.FileHeader, user *model.User) (*model.Photo, error) {
	if strings.TrimSpace(title) == "" {
		return nil, common.NewValidationError("title is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	src, err := fileHeader.Open()
	if err != nil {
		return nil, common.NewValidationError("无法读取上传文件")
	}
	defer src.Close()

	if ok, msg := utils.ValidateImageContent(src, ext); !ok {
		return nil, common.NewValidationError(msg)
	}

	cfg := config.Get()
	now := time.Now()
	relDir := filepath.Join(now.Format("2006"), now.Format("01"), now.Format("02"))
	filename := uuid.NewString() + ext
	absDir := filepath.Join(cfg.Upload.Path, relDir)
	if err := os.MkdirAll(absDir, 0755); err != nil {
		return nil, common.NewInternalError("上传失败，请稍后重试")
	}

	absPath, err := utils.SecureJoin(cfg.Upload.Path, filepath.Join(relDir, filename))
	if err != nil {
		return nil, common.NewValidationError("非法文件路径")
	}

	dst, err := os.Create(absPath)
	if err != nil {
		return nil, common.NewInternalError("上传失败，请稍后重试")
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(absPath)
		return nil, common.NewInternalError("上传失败，请稍后重试")
	}

	photo := &model.Photo{
		Title:       title,
		Description: description,
		FilePath:    cfg.Upload.URLPrefix + filepath.ToSlash(filepath.Join(relDir, filename)),
		UserID:      user.ID,
	}
	if err := s.photoStore.Create(photo); err != nil {
		_ = os.Remove(absPath)
		return nil, common.NewInternalError("上传失败，请稍后重试")
	}
	return photo, nil
}

func (s *PhotoService) GetPhoto(photoID uint) (*model.Photo, error) {
	photo, err := s.photoStore.FindByID(photoID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return nil, common.NewInternalError("获取照片失败")
	}
	return photo, nil
}

func (s *PhotoService) ListPhotos(user *model.User, skip, limit int) ([]model.Photo, error) {
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	photos, err := s.photoStore.ListByUser(user.ID, skip, limit)
	if err != nil {
		return nil, common.NewInternalError("获取照片列表失败")
	}
	return photos, nil
}

// UpdateDescription 仅作者本人可改；管理端走 AdminService。
func (s *PhotoService) UpdateDescription(photoID uint, description string, user *model.User) (*model.Photo, error) {
	photo, err := s.GetPhoto(photoID)
	if err != nil {
		return nil, err
	}
	if photo.UserID != user.ID {
		return nil, common.NewForbiddenError(consts.MsgOperationForbidden)
	}

	if err := s.photoStore.UpdateDescription(photoID, description); err != nil {
		return nil, common.NewInternalError("更新描述失败")
	}
	photo.Description = description
	return photo, nil
}

// DeletePhoto 作者本人或管理/审核角色可删
func (s *PhotoService) DeletePhoto(photoID uint, user *model.User) (*model.Photo, error) {
	photo, err := s.GetPhoto(photoID)
	if err != nil {
		return nil, err
	}
	if photo.UserID != user.ID && !user.IsStaff() {
		return nil, common.NewForbiddenError(consts.MsgOperationForbidden)
	}

	if err := s.photoStore.Delete(photo); err != nil {
		return nil, common.NewInternalError("删除照片失败")
	}
	s.removeLocalFiles(photo)
	return photo, nil
}

// QRCode 为照片访问地址生成二维码（base64 PNG）
func (s *PhotoService) QRCode(photoID uint) (string, error) {
	photo, err := s.GetPhoto(photoID)
	if err != nil {
		return "", err
	}

	photoURL := config.Get().Server.BaseURL + photo.FilePath
	qr, err := utils.MakeQRCodeBase64(photoURL, 256)
	if err != nil {
		return "", common.NewInternalError("生成二维码失败")
	}
	return qr, nil
}

// Transform 生成缩放变体并记录到 FilePathTransform。
// 宽度上限 2048，高度按比例；变体文件与原图同目录。
func (s *PhotoService) Transform(photoID uint, width int, user *model.User) (*model.Photo, error) {
	if width < 16 || width > 2048 {
		return nil, common.NewValidationError("width must be between 16 and 2048")
	}

	photo, err := s.GetPhoto(photoID)
	if err != nil {
		return nil, err
	}
	if photo.UserID != user.ID && !user.IsStaff() {
		return nil, common.NewForbiddenError(consts.MsgOperationForbidden)
	}

	cfg := config.Get()
	rel := strings.TrimPrefix(photo.FilePath, cfg.Upload.URLPrefix)
	absPath, err := utils.SecureJoin(cfg.Upload.Path, filepath.FromSlash(rel))
	if err != nil {
		return nil, common.NewInternalError("生成变体失败")
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, common.NewInternalError("生成变体失败")
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, common.NewInternalError("生成变体失败")
	}

	resized := resize.Resize(uint(width), 0, img, resize.Lanczos3)

	ext := filepath.Ext(rel)
	transformRel := strings.TrimSuffix(rel, ext) + fmt.Sprintf("_w%d", width) + ext
	transformAbs, err := utils.SecureJoin(cfg.Upload.Path, filepath.FromSlash(transformRel))
	if err != nil {
		return nil, common.NewInternalError("生成变体失败")
	}

	out, err := os.Create(transformAbs)
	if err != nil {
		return nil, common.NewInternalError("生成变体失败")
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, resized)
	default:
		err = jpeg.Encode(out, resized, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		_ = os.Remove(transformAbs)
		return nil, common.NewInternalError("生成变体失败")
	}

	photo.FilePathTransform = cfg.Upload.URLPrefix + filepath.ToSlash(transformRel)
	if err := s.photoStore.Save(photo); err != nil {
		return nil, common.NewInternalError("生成变体失败")
	}
	return photo, nil
}

// removeLocalFiles 清理磁盘文件；失败只记日志，库里记录已删。
func (s *PhotoService) removeLocalFiles(photo *model.Photo) {
	cfg := config.Get()
	for _, p := range []string{photo.FilePath, photo.FilePathTransform} {
		if p == "" {
			continue
		}
		rel := strings.TrimPrefix(p, cfg.Upload.URLPrefix)
		absPath, err := utils.SecureJoin(cfg.Upload.Path, filepath.FromSlash(rel))
		if err != nil {
			log.Printf("⚠️ 非法文件路径，跳过删除: %s", p)
			continue
		}
		if err := os.Remove(absPath); err != nil && !os.IsNotExist(err) {
			log.Printf("⚠️ 删除文件失败 %s: %v", absPath, err)
		}
	}
}
