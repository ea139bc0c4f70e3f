package service

import (
	"Gallery/models"
	"Gallery/pkg/response"
	"Gallery/types"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategory(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// slug 缺省由名称生成
	category, err := env.Categories.CreateCategory(ctx, &types.CreateCategoryRequest{Name: "Street Photography"})
	require.NoError(t, err)
	assert.Equal(t, "street-photography", category.Slug)

	// 显式 slug 原样保留
	custom, err := env.Categories.CreateCategory(ctx, &types.CreateCategoryRequest{Name: "B&W", Slug: "mono"})
	require.NoError(t, err)
	assert.Equal(t, "mono", custom.Slug)

	// 重名撞唯一键
	_, err = env.Categories.CreateCategory(ctx, &types.CreateCategoryRequest{Name: "Street Photography"})
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 409, biz.Code)
}

func TestDeleteCategoryDetachesImages(t *testing.T) {
	env := newTestEnv(t)
	user := env.createTestUser(t, "alice")
	nature := env.createTestCategory(t, "Nature")
	sea := env.createTestTag(t, "Sea", nature.ID)

	image := env.uploadImage(t, user.ID, "Harbor", &types.CreateImageRequest{
		CategoryID: &nature.ID,
		TagIDs:     []int64{sea.ID},
	})

	ctx := context.Background()
	require.NoError(t, env.Categories.DeleteCategory(ctx, "nature"))

	// 图片保留，分类引用置空
	var stored models.Image
	require.NoError(t, env.DB.Where("id = ?", image.ID).First(&stored).Error)
	assert.Nil(t, stored.CategoryID)

	// 分类下的标签连同关联一并删除
	var tagCount int64
	require.NoError(t, env.DB.Model(&models.Tag{}).Count(&tagCount).Error)
	assert.Zero(t, tagCount)
	var linkCount int64
	require.NoError(t, env.DB.Table("image_tags").Count(&linkCount).Error)
	assert.Zero(t, linkCount)

	// 删不存在的分类
	err := env.Categories.DeleteCategory(ctx, "nature")
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, 404, biz.Code)
}

func TestListCategories(t *testing.T) {
	env := newTestEnv(t)
	env.createTestCategory(t, "Urban")
	env.createTestCategory(t, "Nature")

	categories, err := env.Categories.ListCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	// 名称升序
	assert.Equal(t, "Nature", categories[0].Name)
	assert.Equal(t, "Urban", categories[1].Name)
}
