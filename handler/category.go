package handler

import (
	"Gallery/config"
	"Gallery/middleware"
	"Gallery/pkg/context"
	"Gallery/pkg/response"
	"Gallery/service"
	"Gallery/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Category struct {
	Config          *config.Config
	CategoryService service.ICategoryService
	TagService      service.ITagService
}

func (h *Category) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	g := r.Group("/v1/categories")
	g.GET("", context.Wrap(h.ListCategories))
	g.POST("", authorize, context.Wrap(h.CreateCategory))
	g.DELETE("/:slug", authorize, context.Wrap(h.DeleteCategory))

	t := r.Group("/v1/tags")
	t.GET("", context.Wrap(h.ListTags))
	t.POST("", authorize, context.Wrap(h.CreateTag))
}

func (h *Category) ListCategories(c *gin.Context) error {
	categories, err := h.CategoryService.ListCategories(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, categories)
	return nil
}

func (h *Category) CreateCategory(c *gin.Context) error {
	var req types.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	category, err := h.CategoryService.CreateCategory(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, category)
	return nil
}

// DeleteCategory 删除分类，引用它的图片不受影响（分类字段置空）
func (h *Category) DeleteCategory(c *gin.Context) error {
	if err := h.CategoryService.DeleteCategory(c.Request.Context(), c.Param("slug")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// ListTags 按分类查标签，?category= 传分类 slug
func (h *Category) ListTags(c *gin.Context) error {
	categorySlug := c.Query("category")
	if categorySlug == "" {
		return response.NewError(http.StatusBadRequest, "缺少 category 参数")
	}
	tags, err := h.TagService.ListByCategory(c.Request.Context(), categorySlug)
	if err != nil {
		return err
	}
	response.Success(c, tags)
	return nil
}

func (h *Category) CreateTag(c *gin.Context) error {
	var req types.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	tag, err := h.TagService.CreateTag(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, tag)
	return nil
}
