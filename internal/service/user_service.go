package service

import (
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"photo-share-server/internal/common"
	"photo-share-server/internal/config"
	"photo-share-server/internal/model"
	"photo-share-server/internal/utils"
	"strings"

	"github.com/google/uuid"
	"github.com/nfnt/resize"
)

const avatarSize = 300

// UpdateAvatar 更换头像：统一缩放为 300x300 后存储，
// 并刷新缓存里的用户副本。
func (s *UserService) UpdateAvatar(user *model.User, fileHeader *multipart.FileHeader) (*model.User, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	src, err := fileHeader.Open()
	if err != nil {
		return nil, common.NewValidationError("无法读取上传文件")
	}
	defer src.Close()

	if ok, msg := utils.ValidateImageContent(src, ext); !ok {
		return nil, common.NewValidationError(msg)
	}

	img, format, err := image.Decode(src)
	if err != nil {
		return nil, common.NewValidationError("无法解析图片内容")
	}
	resized := resize.Thumbnail(avatarSize, avatarSize, img, resize.Lanczos3)

	cfg := config.Get()
	relPath := filepath.Join("avatars", uuid.NewString()+ext)
	if err := os.MkdirAll(filepath.Join(cfg.Upload.Path, "avatars"), 0755); err != nil {
		return nil, common.NewInternalError("更新头像失败")
	}
	absPath, err := utils.SecureJoin(cfg.Upload.Path, relPath)
	if err != nil {
		return nil, common.NewValidationError("非法文件路径")
	}

	out, err := os.Create(absPath)
	if err != nil {
		return nil, common.NewInternalError("更新头像失败")
	}
	defer out.Close()

	switch format {
	case "png":
		err = png.Encode(out, resized)
	default:
		err = jpeg.Encode(out, resized, &jpeg.Options{Quality: 90})
	}
	if err != nil {
		_ = os.Remove(absPath)
		return nil, common.NewInternalError("更新头像失败")
	}

	avatarURL := cfg.Upload.URLPrefix + filepath.ToSlash(relPath)
	if err := s.userStore.UpdateAvatarByEmail(user.Email, avatarURL); err != nil {
		_ = os.Remove(absPath)
		return nil, common.NewInternalError("更新头像失败")
	}

	user.Avatar = avatarURL
	s.cache.Set(user)
	return user, nil
}
