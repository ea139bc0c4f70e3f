package service

import (
	"Gallery/dao"
	"Gallery/models"
	"Gallery/pkg/response"
	"Gallery/types"
	"context"
	"errors"

	"github.com/sourcegraph/conc"
	"gorm.io/gorm"
)

var _ IEngagementService = (*EngagementService)(nil)

type IEngagementService interface {
	ToggleLike(ctx context.Context, imageID, userID int64) (*types.ToggleLikeResponse, error)
	ToggleLikeBySlug(ctx context.Context, slug string, userID int64) (*types.ToggleLikeResponse, error)
	RecordView(ctx context.Context, imageID, viewerID int64, viewerIP string) error
	IsLiked(ctx context.Context, imageID, viewerID int64) (bool, error)
	GetEngagement(ctx context.Context, imageID, viewerID int64) (types.Engagement, error)
}

type EngagementService struct {
	ImageDAO   *dao.Image
	LikeDAO    *dao.ImageLike
	ViewDAO    *dao.ImageView
	CommentDAO *dao.Comment
}

// ToggleLike 点赞切换
// 直接尝试插入，撞唯一键说明已点过，转为取消；两次调用互为逆操作
func (s *EngagementService) ToggleLike(ctx context.Context, imageID, userID int64) (*types.ToggleLikeResponse, error) {
	exist, err := s.ImageDAO.IsExist(ctx, "id = ?", imageID)
	if err != nil {
		return nil, err
	}
	if !exist {
		return nil, response.NotFound("图片不存在")
	}

	liked := true
	like := &models.ImageLike{ImageID: imageID, UserID: userID}
	if err := s.LikeDAO.Create(ctx, like); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
		// 已点过赞，取消
		if err := s.LikeDAO.Delete(ctx, imageID, userID); err != nil {
			return nil, err
		}
		liked = false
	}

	count, err := s.LikeDAO.CountByImage(ctx, imageID)
	if err != nil {
		return nil, err
	}
	return &types.ToggleLikeResponse{Liked: liked, LikesCount: count}, nil
}

// ToggleLikeBySlug 对外路由用 slug 定位图片
func (s *EngagementService) ToggleLikeBySlug(ctx context.Context, slug string, userID int64) (*types.ToggleLikeResponse, error) {
	image, err := s.ImageDAO.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}
	return s.ToggleLike(ctx, image.ID, userID)
}

// RecordView 记录浏览，get-or-create 语义
// 登录用户按 user_id 去重，匿名按 ip 去重；重复访问不增计数
func (s *EngagementService) RecordView(ctx context.Context, imageID, viewerID int64, viewerIP string) error {
	if viewerID > 0 {
		return s.ViewDAO.RecordByUser(ctx, imageID, viewerID)
	}
	if viewerIP != "" {
		return s.ViewDAO.RecordByIP(ctx, imageID, viewerIP)
	}
	return nil
}

// IsLiked 未登录恒为 false
func (s *EngagementService) IsLiked(ctx context.Context, imageID, viewerID int64) (bool, error) {
	if viewerID <= 0 {
		return false, nil
	}
	return s.LikeDAO.CheckExists(ctx, imageID, viewerID)
}

// GetEngagement 聚合点赞/浏览/评论计数和当前观看者的点赞状态
// 四路查询并发执行
func (s *EngagementService) GetEngagement(ctx context.Context, imageID, viewerID int64) (types.Engagement, error) {
	var (
		engagement types.Engagement
		likesErr   error
		viewsErr   error
		cmtErr     error
		likedErr   error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		engagement.LikesCount, likesErr = s.LikeDAO.CountByImage(ctx, imageID)
	})
	wg.Go(func() {
		engagement.ViewsCount, viewsErr = s.ViewDAO.CountByImage(ctx, imageID)
	})
	wg.Go(func() {
		engagement.CommentsCount, cmtErr = s.CommentDAO.CountByImage(ctx, imageID)
	})
	wg.Go(func() {
		engagement.IsLiked, likedErr = s.IsLiked(ctx, imageID, viewerID)
	})
	wg.Wait()

	for _, err := range []error{likesErr, viewsErr, cmtErr, likedErr} {
		if err != nil {
			return types.Engagement{}, err
		}
	}
	return engagement, nil
}
