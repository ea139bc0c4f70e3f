package service

import (
	"Gallery/config"
	"Gallery/dao"
	"Gallery/models"
	"Gallery/pkg/img"
	"Gallery/pkg/log"
	"Gallery/pkg/response"
	"Gallery/pkg/snowflake"
	"Gallery/pkg/storage"
	"Gallery/pkg/utils"
	"Gallery/types"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	cmap "github.com/orcaman/concurrent-map/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var _ IImageService = (*ImageService)(nil)

type IImageService interface {
	CreateImage(ctx context.Context, userID int64, req *types.CreateImageRequest, upload *types.Upload) (*models.Image, error)
	UpdateImage(ctx context.Context, userID int64, slug string, req *types.UpdateImageRequest, upload *types.Upload) (*models.Image, error)
	DeleteImage(ctx context.Context, userID int64, slug string) error
	GetDetail(ctx context.Context, slug string, viewerID int64, viewerIP string) (*types.ImageDetailResponse, error)
	ListImages(ctx context.Context, keyword string, categorySlug string, page, pageSize int) (*types.ListImagesResponse, error)
	ListSimilar(ctx context.Context, slug string) ([]*types.ImageItem, error)
}

type ImageService struct {
	ImageDAO    *dao.Image
	UsersDAO    *dao.Users
	CategoryDAO *dao.Category
	TagService  ITagService
	Engagement  IEngagementService
	Disk        *storage.Disk
	Config      *config.Config
}

// 允许的图片类型，content-type 缺失时退回扩展名判断
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// 同进程内的 slug 预占表，缩小探测与落库之间的并发窗口
// 最终正确性仍由 images.slug 的唯一索引兜底
var inflightSlugs = cmap.New[struct{}]()

// validateUpload 类型与大小两项独立校验，任一失败整个上传被拒绝
// 都在落库之前执行
func (s *ImageService) validateUpload(upload *types.Upload) error {
	if upload.ContentType != "" {
		if !allowedMimeTypes[strings.ToLower(upload.ContentType)] {
			return response.Invalid("不支持的文件格式，仅支持 JPG/PNG/GIF/WEBP")
		}
	} else {
		ext := strings.ToLower(filepath.Ext(upload.Filename))
		if !allowedExtensions[ext] {
			return response.Invalid("不支持的文件格式（扩展名）")
		}
	}
	if upload.Size > s.Config.Upload.MaxUploadBytes() {
		return response.Invalid("文件过大，最大 5MB")
	}
	return nil
}

// allocateSlug 标题转 slug，占用时追加 -1、-2 递增后缀直到空闲
// excludeID 排除自身，幂等重存不换 slug
func (s *ImageService) allocateSlug(ctx context.Context, title string, excludeID int64) (string, func(), error) {
	base := utils.Slugify(title)
	if base == "" {
		base = "image"
	}
	slug := base
	for i := 1; ; i++ {
		exists, err := s.ImageDAO.SlugExists(ctx, slug, excludeID)
		if err != nil {
			return "", nil, err
		}
		if !exists && inflightSlugs.SetIfAbsent(slug, struct{}{}) {
			reserved := slug
			return reserved, func() { inflightSlugs.Remove(reserved) }, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// CreateImage 上传入库流水线：
// 校验 -> 分配 slug -> 落文件和实体 -> 读取物理元数据 -> 超限则缩放 -> 回写
func (s *ImageService) CreateImage(ctx context.Context, userID int64, req *types.CreateImageRequest, upload *types.Upload) (*models.Image, error) {
	if err := s.validateUpload(upload); err != nil {
		return nil, err
	}

	author, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("用户不存在")
		}
		return nil, err
	}

	if req.CategoryID != nil {
		exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, response.Invalid("分类不存在")
		}
	}

	// 标签和分类一样先解析，校验全部通过才允许落任何东西
	tags, err := s.TagService.ResolveTags(ctx, req.TagIDs)
	if err != nil {
		return nil, err
	}

	slug, release, err := s.allocateSlug(ctx, req.Title, 0)
	if err != nil {
		return nil, err
	}
	defer release()

	rel := storage.ImagePath(author.Username, slug, upload.Filename)
	image := &models.Image{
		ID:          snowflake.GenID(),
		Title:       req.Title,
		Slug:        slug,
		Description: req.Description,
		AuthorID:    userID,
		CategoryID:  req.CategoryID,
		FilePath:    rel,
	}

	if err := s.Disk.SaveReader(upload.Reader, rel); err != nil {
		return nil, err
	}
	if err := s.ImageDAO.CreateImage(ctx, image); err != nil {
		// 落库失败不留孤儿文件
		_ = s.Disk.Remove(rel)
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("slug 已被占用，请重试")
		}
		return nil, err
	}

	if len(tags) > 0 {
		if err := s.TagService.ApplyTags(ctx, image, tags); err != nil {
			return nil, err
		}
	}

	s.extractMetadata(ctx, image)
	return image, nil
}

// extractMetadata 元数据采集与条件缩放
// 任何失败都吞掉只打日志，实体行保留、度量字段维持 NULL（软失败）
func (s *ImageService) extractMetadata(ctx context.Context, image *models.Image) {
	maxEdge := s.Config.Upload.MaxEdgePixels()
	abs := s.Disk.Abs(image.FilePath)

	meta, err := img.Probe(abs)
	if err == nil && meta.Exceeds(maxEdge) {
		if err = img.DownscaleInPlace(abs, maxEdge); err == nil {
			meta, err = img.Probe(abs)
		}
	}
	if err != nil {
		log.L.Warn("image metadata extraction failed",
			zap.Int64("image_id", image.ID),
			zap.String("path", image.FilePath),
			zap.Error(err))
		return
	}

	if err := s.ImageDAO.UpdateMetadata(ctx, image.ID, meta.Width, meta.Height, meta.FileSize); err != nil {
		log.L.Warn("image metadata persist failed",
			zap.Int64("image_id", image.ID),
			zap.Error(err))
		return
	}
	image.Width = &meta.Width
	image.Height = &meta.Height
	image.FileSize = &meta.FileSize
}

// UpdateImage 作者编辑：标题/描述/分类/标签/替换文件
// slug 保持不变，替换文件后重新采集元数据
func (s *ImageService) UpdateImage(ctx context.Context, userID int64, slug string, req *types.UpdateImageRequest, upload *types.Upload) (*models.Image, error) {
	image, err := s.ImageDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}
	if image.AuthorID != userID {
		return nil, response.Forbidden("只有作者本人可以编辑")
	}

	// 所有校验在动文件和数据库之前完成
	var tags []*models.Tag
	if req.TagIDs != nil {
		tags, err = s.TagService.ResolveTags(ctx, *req.TagIDs)
		if err != nil {
			return nil, err
		}
	}

	updates := map[string]any{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.CategoryID != nil {
		exist, err := s.CategoryDAO.IsExist(ctx, "id = ?", *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if !exist {
			return nil, response.Invalid("分类不存在")
		}
		updates["category_id"] = *req.CategoryID
	}

	if upload != nil {
		if err := s.validateUpload(upload); err != nil {
			return nil, err
		}
		author, err := s.UsersDAO.FindById(ctx, image.AuthorID)
		if err != nil {
			return nil, err
		}
		rel := storage.ImagePath(author.Username, image.Slug, upload.Filename)
		if err := s.Disk.SaveReader(upload.Reader, rel); err != nil {
			return nil, err
		}
		if rel != image.FilePath {
			_ = s.Disk.Remove(image.FilePath)
		}
		updates["file_path"] = rel
		// 旧度量对新文件无意义，采集失败时保持 NULL
		updates["width"] = nil
		updates["height"] = nil
		updates["file_size"] = nil
		image.FilePath = rel
		image.Width = nil
		image.Height = nil
		image.FileSize = nil
	}

	if err := s.ImageDAO.UpdateFields(ctx, image.ID, updates); err != nil {
		return nil, err
	}
	if req.Title != nil {
		image.Title = *req.Title
	}
	if req.Description != nil {
		image.Description = *req.Description
	}
	if req.CategoryID != nil {
		image.CategoryID = req.CategoryID
	}

	// 标签整组替换，非空时会按第一个标签改写分类
	if req.TagIDs != nil {
		if err := s.TagService.ApplyTags(ctx, image, tags); err != nil {
			return nil, err
		}
	}

	if upload != nil {
		s.extractMetadata(ctx, image)
	}
	return image, nil
}

// DeleteImage 作者删除，点赞/浏览/评论级联清理，物理文件一并移除
func (s *ImageService) DeleteImage(ctx context.Context, userID int64, slug string) error {
	image, err := s.ImageDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("图片不存在")
		}
		return err
	}
	if image.AuthorID != userID {
		return response.Forbidden("只有作者本人可以删除")
	}
	if err := s.ImageDAO.DeleteCascade(ctx, image.ID); err != nil {
		return err
	}
	if err := s.Disk.Remove(image.FilePath); err != nil {
		log.L.Warn("remove image file failed",
			zap.String("path", image.FilePath),
			zap.Error(err))
	}
	return nil
}

// GetDetail 详情：记录一次浏览（同一身份幂等），并聚合互动数据
func (s *ImageService) GetDetail(ctx context.Context, slug string, viewerID int64, viewerIP string) (*types.ImageDetailResponse, error) {
	image, err := s.ImageDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}

	if err := s.Engagement.RecordView(ctx, image.ID, viewerID, viewerIP); err != nil {
		log.L.Warn("record view failed", zap.Int64("image_id", image.ID), zap.Error(err))
	}

	engagement, err := s.Engagement.GetEngagement(ctx, image.ID, viewerID)
	if err != nil {
		return nil, err
	}
	return &types.ImageDetailResponse{
		Image:      image,
		Engagement: engagement,
	}, nil
}

// ListImages 首页/分类页列表
func (s *ImageService) ListImages(ctx context.Context, keyword string, categorySlug string, page, pageSize int) (*types.ListImagesResponse, error) {
	if page < 1 {
		page = types.DefaultPage
	}
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}

	var categoryID int64
	if categorySlug != "" {
		category, err := s.CategoryDAO.FindBySlug(ctx, categorySlug)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NotFound("分类不存在")
			}
			return nil, err
		}
		categoryID = category.ID
	}

	images, err := s.ImageDAO.List(ctx, keyword, categoryID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	resp := &types.ListImagesResponse{Images: make([]*types.ImageItem, 0, len(images))}
	for _, m := range images {
		resp.Images = append(resp.Images, types.NewImageItem(m))
	}
	return resp, nil
}

// ListSimilar 相关图片：同分类或共同标签，点赞数优先、新图优先，最多 6 张
func (s *ImageService) ListSimilar(ctx context.Context, slug string) ([]*types.ImageItem, error) {
	image, err := s.ImageDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}

	tagIDs, err := s.ImageDAO.GetTagIDs(ctx, image.ID)
	if err != nil {
		return nil, err
	}
	similar, err := s.ImageDAO.FindSimilar(ctx, image, tagIDs, types.SimilarLimit)
	if err != nil {
		return nil, err
	}

	items := make([]*types.ImageItem, 0, len(similar))
	for _, m := range similar {
		items = append(items, types.NewImageItem(m))
	}
	return items, nil
}
