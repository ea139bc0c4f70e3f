package dao

import (
	"Gallery/models"
	"context"

	"gorm.io/gorm"
)

type Tag struct {
	Repo[models.Tag]
}

func NewTag(db *gorm.DB) *Tag {
	return &Tag{
		Repo: NewRepo[models.Tag](db),
	}
}

// ListByCategory 分类下的标签，按名称排序
func (d *Tag) ListByCategory(ctx context.Context, categoryID int64) ([]*models.Tag, error) {
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("name ASC").
		Find(&tags).Error
	return tags, err
}

// FindByIDs 按 ID 列表查标签，返回顺序不保证与入参一致
func (d *Tag) FindByIDs(ctx context.Context, ids []int64) ([]*models.Tag, error) {
	if len(ids) == 0 {
		return []*models.Tag{}, nil
	}
	var tags []*models.Tag
	err := d.Db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&tags).Error
	return tags, err
}
