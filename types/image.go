package types

import (
	"Gallery/models"
	"time"
)

// Pagination 分页常量
const (
	DefaultPage     int = 1
	DefaultPageSize int = 20
)

// SimilarLimit 相关图片最多返回数
const SimilarLimit = 6

// CreateImageRequest 上传图片的表单字段（文件另走 multipart）
type CreateImageRequest struct {
	Title       string  `form:"title" binding:"required,max=100"`
	Description string  `form:"description"`
	CategoryID  *int64  `form:"category_id"`
	TagIDs      []int64 `form:"tag_ids"`
}

// UpdateImageRequest 编辑图片，nil 字段表示不改
type UpdateImageRequest struct {
	Title       *string  `form:"title" binding:"omitempty,max=100"`
	Description *string  `form:"description"`
	CategoryID  *int64   `form:"category_id"`
	TagIDs      *[]int64 `form:"tag_ids"`
}

// ImageItem 列表项
type ImageItem struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	FilePath  string    `json:"file_path"`
	Width     *int      `json:"width,omitempty"`
	Height    *int      `json:"height,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ListImagesResponse 列表响应
type ListImagesResponse struct {
	Images []*ImageItem `json:"images"`
}

// Engagement 图片的互动聚合
type Engagement struct {
	LikesCount    int64 `json:"likes_count"`
	ViewsCount    int64 `json:"views_count"`
	CommentsCount int64 `json:"comments_count"`
	IsLiked       bool  `json:"is_liked"`
}

// ImageDetailResponse 详情响应
type ImageDetailResponse struct {
	Image      *models.Image `json:"image"`
	Engagement Engagement    `json:"engagement"`
}

// ToggleLikeResponse 点赞切换结果
type ToggleLikeResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}

func NewImageItem(m *models.Image) *ImageItem {
	return &ImageItem{
		ID:        m.ID,
		Title:     m.Title,
		Slug:      m.Slug,
		FilePath:  m.FilePath,
		Width:     m.Width,
		Height:    m.Height,
		CreatedAt: m.CreatedAt,
	}
}
