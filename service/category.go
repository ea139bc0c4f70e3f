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

var _ ICategoryService = (*CategoryService)(nil)

type ICategoryService interface {
	CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(ctx context.Context, slug string) error
	ListCategories(ctx context.Context) ([]*models.Category, error)
}

type CategoryService struct {
	CategoryDAO *dao.Category
}

// CreateCategory 新建分类，slug 缺省由名称生成
// 名称与 slug 的唯一性不做预检，由数据库约束裁决
func (s *CategoryService) CreateCategory(ctx context.Context, req *types.CreateCategoryRequest) (*models.Category, error) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Name)
	}
	category := &models.Category{
		Name: req.Name,
		Slug: slug,
	}
	if err := s.CategoryDAO.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("分类名称或 slug 已存在")
		}
		return nil, err
	}
	return category, nil
}

// DeleteCategory 删除分类，引用它的图片分类置空、图片本身保留
func (s *CategoryService) DeleteCategory(ctx context.Context, slug string) error {
	category, err := s.CategoryDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("分类不存在")
		}
		return err
	}
	return s.CategoryDAO.DeleteCascade(ctx, category.ID)
}

func (s *CategoryService) ListCategories(ctx context.Context) ([]*models.Category, error) {
	return s.CategoryDAO.ListAll(ctx)
}
