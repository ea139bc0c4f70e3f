package dao

import (
	"Gallery/models"
	"context"

	"gorm.io/gorm"
)

type Comment struct {
	Repo[models.Comment]
}

func NewComment(db *gorm.DB) *Comment {
	return &Comment{
		Repo: NewRepo[models.Comment](db),
	}
}

func (d *Comment) Create(ctx context.Context, comment *models.Comment) error {
	return d.Db.WithContext(ctx).Create(comment).Error
}

// ListByImage 图片评论列表，按时间倒序
func (d *Comment) ListByImage(ctx context.Context, imageID int64, limit, offset int) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := d.Db.WithContext(ctx).
		Where("image_id = ?", imageID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	return comments, err
}

// CountByImage 图片评论数
func (d *Comment) CountByImage(ctx context.Context, imageID int64) (int64, error) {
	return d.Repo.Count(ctx, "image_id = ?", imageID)
}

// Delete 物理删除评论
func (d *Comment) Delete(ctx context.Context, commentID int64) error {
	return d.Db.WithContext(ctx).
		Where("id = ?", commentID).
		Delete(&models.Comment{}).Error
}
