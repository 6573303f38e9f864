package service

import (
	"errors"
	"photo-share-server/internal/common"
	"photo-share-server/internal/consts"
	"photo-share-server/internal/model"

	"gorm.io/gorm"
)

// RatingSummary 某张照片的评分统计
type RatingSummary struct {
	NumberOfRatings int     `json:"number_of_ratings"`
	VeryBad         int     `json:"very_bad"`  // 1 星
	Bad             int     `json:"bad"`       // 2 星
	Average         int     `json:"average"`   // 3 星
	Good            int     `json:"good"`      // 4 星
	Excellent       int     `json:"excellent"` // 5 星
	AverageRating   float64 `json:"average_rating"`
}

// RatePhoto 为照片打分（1..5）。
// 同一用户重复打分只覆盖分值，由数据库唯一约束 + ON CONFLICT 保证原子性。
func (s *RatingService) RatePhoto(photoID uint, stars int, user *model.User) (*model.Rating, error) {
	if stars < 1 || stars > 5 {
		return nil, common.NewValidationError("rating must be between 1 and 5")
	}

	if _, err := s.photoStore.FindByID(photoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgPhotoNotFound)
		}
		return nil, common.NewInternalError("评分失败，请稍后重试")
	}

	rating := &model.Rating{
		UserID:  user.ID,
		PhotoID: photoID,
		Rating:  stars,
	}
	if err := s.ratingStore.Upsert(rating); err != nil {
		return nil, common.NewInternalError("评分失败，请稍后重试")
	}

	// Upsert 命中已有行时返回的 ID 为空，重查拿到完整记录
	saved, err := s.ratingStore.FindByPhotoAndUser(photoID, user.ID)
	if err != nil {
		return nil, common.NewInternalError("评分失败，请稍后重试")
	}
	return saved, nil
}

// Summary 计算照片的评分分布与均值；无评分时返回全零结果而非错误。
func (s *RatingService) Summary(photoID uint) (*RatingSummary, error) {
	ratings, err := s.ratingStore.ListByPhoto(photoID)
	if err != nil {
		return nil, common.NewInternalError("获取评分统计失败")
	}

	summary := &RatingSummary{}
	if len(ratings) == 0 {
		return summary, nil
	}

	total := 0
	for _, r := range ratings {
		total += r.Rating
		switch r.Rating {
		case 1:
			summary.VeryBad++
		case 2:
			summary.Bad++
		case 3:
			summary.Average++
		case 4:
			summary.Good++
		case 5:
			summary.Excellent++
		}
	}

	summary.NumberOfRatings = len(ratings)
	summary.AverageRating = float64(total) / float64(len(ratings))
	return summary, nil
}

// GetRating 查询用户对某照片的评分
func (s *RatingService) GetRating(photoID uint, user *model.User) (*model.Rating, error) {
	rating, err := s.ratingStore.FindByPhotoAndUser(photoID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgRatingNotFound)
		}
		return nil, common.NewInternalError("获取评分失败")
	}
	return rating, nil
}

// RemoveRating 删除用户对某照片的评分；不存在时返回 404。
func (s *RatingService) RemoveRating(photoID uint, user *model.User) (*model.Rating, error) {
	rating, err := s.ratingStore.FindByPhotoAndUser(photoID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, common.NewNotFoundError(consts.MsgRatingNotFound)
		}
		return nil, common.NewInternalError("删除评分失败")
	}

	if err := s.ratingStore.Delete(rating); err != nil {
		return nil, common.NewInternalError("删除评分失败")
	}
	return rating, nil
}
