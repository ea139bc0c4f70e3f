package dao

import (
	"Gallery/models"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ImageView struct {
	Repo[models.ImageView]
}

func NewImageView(db *gorm.DB) *ImageView {
	return &ImageView{
		Repo: NewRepo[models.ImageView](db),
	}
}

// RecordByUser 登录用户的浏览，get-or-create，重复访问不产生新行
func (d *ImageView) RecordByUser(ctx context.Context, imageID, userID int64) error {
	view := &models.ImageView{
		ImageID:  imageID,
		UserID:   &userID,
		ViewedAt: time.Now(),
	}
	err := d.Db.WithContext(ctx).
		Where("image_id = ? AND user_id = ?", imageID, userID).
		FirstOrCreate(view).Error
	// 并发下 FirstOrCreate 的插入可能撞唯一键，等同已有记录
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// RecordByIP 匿名浏览按来源 IP 去重
func (d *ImageView) RecordByIP(ctx context.Context, imageID int64, ip string) error {
	view := &models.ImageView{
		ImageID:   imageID,
		IPAddress: &ip,
		ViewedAt:  time.Now(),
	}
	err := d.Db.WithContext(ctx).
		Where("image_id = ? AND ip_address = ?", imageID, ip).
		FirstOrCreate(view).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil
	}
	return err
}

// CountByImage 图片浏览数
func (d *ImageView) CountByImage(ctx context.Context, imageID int64) (int64, error) {
	return d.Repo.Count(ctx, "image_id = ?", imageID)
}
