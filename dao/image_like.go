package dao

import (
	"Gallery/models"

	"golang.org/x/net/context"
	"gorm.io/gorm"
)

type ImageLike struct {
	Repo[models.ImageLike]
}

func NewImageLike(db *gorm.DB) *ImageLike {
	return &ImageLike{
		Repo: NewRepo[models.ImageLike](db),
	}
}

// Create 创建点赞记录，重复插入返回 gorm.ErrDuplicatedKey
func (d *ImageLike) Create(ctx context.Context, like *models.ImageLike) error {
	return d.Db.WithContext(ctx).Create(like).Error
}

// Delete 删除点赞记录
func (d *ImageLike) Delete(ctx context.Context, imageID, userID int64) error {
	return d.Db.WithContext(ctx).
		Where("image_id = ? AND user_id = ?", imageID, userID).
		Delete(&models.ImageLike{}).Error
}

// CheckExists 检查是否点赞
func (d *ImageLike) CheckExists(ctx context.Context, imageID, userID int64) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.ImageLike{}).
		Where("image_id = ? AND user_id = ?", imageID, userID).
		Count(&count).Error
	return count > 0, err
}

// CountByImage 图片点赞数
func (d *ImageLike) CountByImage(ctx context.Context, imageID int64) (int64, error) {
	return d.Repo.Count(ctx, "image_id = ?", imageID)
}
