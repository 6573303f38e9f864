package repository

import (
	"photo-share-server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagRepository struct {
	db *gorm.DB
}

func (r *TagRepository) FindByID(id uint) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) FindByName(name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) ListAll() ([]model.Tag, error) {
	var tags []model.Tag
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

func (r *TagRepository) Create(tag *model.Tag) error {
	return r.db.Create(tag).Error
}

func (r *TagRepository) Delete(tag *model.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", tag.ID).Delete(&model.PhotoTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(tag).Error
	})
}

func (r *TagRepository) CountByPhoto(photoID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&model.PhotoTag{}).Where("photo_id = ?", photoID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// AttachToPhoto 重复打标签时静默忽略
func (r *TagRepository) AttachToPhoto(photoID, tagID uint) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.PhotoTag{PhotoID: photoID, TagID: tagID}).Error
}

func (r *TagRepository) DetachFromPhoto(photoID, tagID uint) error {
	return r.db.Where("photo_id = ? AND tag_id = ?", photoID, tagID).Delete(&model.PhotoTag{}).Error
}

func (r *TagRepository) ListByPhoto(photoID uint) ([]model.Tag, error) {
	var tags []model.Tag
	err := r.db.Model(&model.Tag{}).
		Joins("JOIN photo_tags ON photo_tags.tag_id = tags.id").
		Where("photo_tags.photo_id = ?", photoID).
		Find(&tags).Error
	if err != nil {
		return nil, err
	}
	return tags, nil
}
