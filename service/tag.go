package service

import (
	"Gallery/dao"
	"Gallery/models"
	"Gallery/pkg/response"
	"Gallery/pkg/utils"
	"Gallery/types"
	"context"
	"errors"

	"gorm.io/gorm"
)

var _ ITagService = (*TagService)(nil)

type ITagService interface {
	ResolveTags(ctx context.Context, tagIDs []int64) ([]*models.Tag, error)
	ApplyTags(ctx context.Context, image *models.Image, tags []*models.Tag) error
	CreateTag(ctx context.Context, req *types.CreateTagRequest) (*models.Tag, error)
	ListByCategory(ctx context.Context, categorySlug string) ([]*models.Tag, error)
}

type TagService struct {
	TagDAO      *dao.Tag
	ImageDAO    *dao.Image
	CategoryDAO *dao.Category
}

// ResolveTags 把提交的标签 ID 解析成实体，保持调用方的提交顺序
// 任一 ID 不存在整组拒绝；校验动作，不碰任何持久化状态
func (s *TagService) ResolveTags(ctx context.Context, tagIDs []int64) ([]*models.Tag, error) {
	tags, err := s.TagDAO.FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}

	// IN 查询不保证顺序，按提交顺序重排
	byID := make(map[int64]*models.Tag, len(tags))
	for _, tag := range tags {
		byID[tag.ID] = tag
	}
	ordered := make([]*models.Tag, 0, len(tagIDs))
	for _, id := range tagIDs {
		tag, ok := byID[id]
		if !ok {
			return nil, response.Invalid("标签不存在")
		}
		ordered = append(ordered, tag)
	}
	return ordered, nil
}

// ApplyTags 把一组已解析的标签整体赋给图片
// 非空时用第一个标签（按提交顺序）的分类改写图片分类，且只落这一个字段
func (s *TagService) ApplyTags(ctx context.Context, image *models.Image, tags []*models.Tag) error {
	if err := s.ImageDAO.ReplaceTags(ctx, image, tags); err != nil {
		return err
	}

	if len(tags) > 0 {
		first := tags[0]
		if err := s.ImageDAO.UpdateCategoryOnly(ctx, image.ID, first.CategoryID); err != nil {
			return err
		}
		categoryID := first.CategoryID
		image.CategoryID = &categoryID
	}
	image.Tags = tags
	return nil
}

// CreateTag 新建标签，slug 由名称生成且不要求唯一
// (name, category_id) 的唯一性由数据库约束把关
func (s *TagService) CreateTag(ctx context.Context, req *types.CreateTagRequest) (*models.Tag, error) {
	exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", req.CategoryID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.Invalid("分类不存在")
	}

	tag := &models.Tag{
		Name:       req.Name,
		Slug:       utils.Slugify(req.Name),
		CategoryID: req.CategoryID,
	}
	if err := s.TagDAO.Create(ctx, tag); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("该分类下已有同名标签")
		}
		return nil, err
	}
	return tag, nil
}

// ListByCategory 按分类 slug 列出标签
func (s *TagService) ListByCategory(ctx context.Context, categorySlug string) ([]*models.Tag, error) {
	category, err := s.CategoryDAO.FindBySlug(ctx, categorySlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("分类不存在")
		}
		return nil, err
	}
	return s.TagDAO.ListByCategory(ctx, category.ID)
}
