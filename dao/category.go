package dao

import (
	"Gallery/models"
	"context"

	"gorm.io/gorm"
)

type Category struct {
	Repo[models.Category]
}

func NewCategory(db *gorm.DB) *Category {
	return &Category{
		Repo: NewRepo[models.Category](db),
	}
}

// FindBySlug 根据 slug 查分类
func (d *Category) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	return d.Repo.FindByWhere(ctx, "slug = ?", slug)
}

// ListAll 全量分类，按名称排序
func (d *Category) ListAll(ctx context.Context) ([]*models.Category, error) {
	var categories []*models.Category
	err := d.Db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

// DeleteCascade 删除分类：引用它的图片置空，挂在下面的标签一并删除
func (d *Category) DeleteCascade(ctx context.Context, categoryID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Image{}).
			Where("category_id = ?", categoryID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM image_tags WHERE tag_id IN (SELECT id FROM tags WHERE category_id = ?)", categoryID).Error; err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", categoryID).Delete(&models.Tag{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", categoryID).Delete(&models.Category{}).Error
	})
}
