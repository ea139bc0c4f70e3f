package dao

import (
	"Gallery/models"
	"context"

	"gorm.io/gorm"
)

type Image struct {
	Repo[models.Image]
}

func NewImage(db *gorm.DB) *Image {
	return &Image{
		Repo: NewRepo[models.Image](db),
	}
}

func (d *Image) CreateImage(ctx context.Context, image *models.Image) error {
	return d.Db.WithContext(ctx).Create(image).Error
}

// SlugExists slug 探测，excludeID 排除自身以允许幂等重存
func (d *Image) SlugExists(ctx context.Context, slug string, excludeID int64) (bool, error) {
	var count int64
	err := d.Db.WithContext(ctx).
		Model(&models.Image{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// FindBySlug 详情查询，带作者/分类/标签
func (d *Image) FindBySlug(ctx context.Context, slug string) (*models.Image, error) {
	var image models.Image
	err := d.Db.WithContext(ctx).
		Preload("Author").
		Preload("Category").
		Preload("Tags").
		Where("slug = ?", slug).
		First(&image).Error
	if err != nil {
		return nil, err
	}
	return &image, nil
}

// List 列表查询，标题模糊搜索 + 分类过滤，按创建时间倒序
func (d *Image) List(ctx context.Context, keyword string, categoryID int64, limit, offset int) ([]*models.Image, error) {
	var images []*models.Image
	query := d.Db.WithContext(ctx).Model(&models.Image{})
	if keyword != "" {
		query = query.Where("title LIKE ?", "%"+keyword+"%")
	}
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&images).Error
	return images, err
}

// FindSimilar 相关图片：同分类或有共同标签，排除自身
// 点赞数倒序，再按创建时间倒序
func (d *Image) FindSimilar(ctx context.Context, image *models.Image, tagIDs []int64, limit int) ([]*models.Image, error) {
	if image.CategoryID == nil && len(tagIDs) == 0 {
		return []*models.Image{}, nil
	}

	query := d.Db.WithContext(ctx).
		Model(&models.Image{}).
		Joins("LEFT JOIN image_likes ON image_likes.image_id = images.id").
		Where("images.id <> ?", image.ID)

	switch {
	case image.CategoryID != nil && len(tagIDs) > 0:
		query = query.Where(
			"images.category_id = ? OR images.id IN (SELECT image_id FROM image_tags WHERE tag_id IN ?)",
			*image.CategoryID, tagIDs,
		)
	case image.CategoryID != nil:
		query = query.Where("images.category_id = ?", *image.CategoryID)
	default:
		query = query.Where("images.id IN (SELECT image_id FROM image_tags WHERE tag_id IN ?)", tagIDs)
	}

	var images []*models.Image
	err := query.
		Group("images.id").
		Order("COUNT(image_likes.id) DESC, images.created_at DESC").
		Limit(limit).
		Find(&images).Error
	return images, err
}

// UpdateMetadata 只回写度量字段，不触碰其他列
func (d *Image) UpdateMetadata(ctx context.Context, imageID int64, width, height int, fileSize int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Image{}).
		Where("id = ?", imageID).
		Updates(map[string]any{
			"width":     width,
			"height":    height,
			"file_size": fileSize,
		}).Error
}

// UpdateFields 编辑用的字段级更新
func (d *Image) UpdateFields(ctx context.Context, imageID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.Image{}).
		Where("id = ?", imageID).
		Updates(updates).Error
}

// UpdateCategoryOnly 标签推断分类时只落 category_id 一个字段
func (d *Image) UpdateCategoryOnly(ctx context.Context, imageID int64, categoryID int64) error {
	return d.Db.WithContext(ctx).
		Model(&models.Image{}).
		Where("id = ?", imageID).
		UpdateColumn("category_id", categoryID).Error
}

// ReplaceTags 整组替换标签关联
func (d *Image) ReplaceTags(ctx context.Context, image *models.Image, tags []*models.Tag) error {
	return d.Db.WithContext(ctx).
		Model(image).
		Association("Tags").
		Replace(tags)
}

// GetTagIDs 图片当前关联的标签 ID
func (d *Image) GetTagIDs(ctx context.Context, imageID int64) ([]int64, error) {
	var tagIDs []int64
	err := d.Db.WithContext(ctx).
		Table("image_tags").
		Where("image_id = ?", imageID).
		Pluck("tag_id", &tagIDs).Error
	return tagIDs, err
}

// DeleteCascade 删除图片及其点赞/浏览/评论/标签关联
// 标签本身保留
func (d *Image) DeleteCascade(ctx context.Context, imageID int64) error {
	return d.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("image_id = ?", imageID).Delete(&models.ImageLike{}).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", imageID).Delete(&models.ImageView{}).Error; err != nil {
			return err
		}
		if err := tx.Where("image_id = ?", imageID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM image_tags WHERE image_id = ?", imageID).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", imageID).Delete(&models.Image{}).Error
	})
}
