package service

import (
	"Gallery/dao"
	"Gallery/models"
	"Gallery/pkg/response"
	"Gallery/pkg/snowflake"
	"Gallery/types"
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
)

var _ ICommentService = (*CommentService)(nil)

type ICommentService interface {
	AddComment(ctx context.Context, imageSlug string, userID int64, req *types.CreateCommentRequest) (*types.CommentResponse, error)
	ListComments(ctx context.Context, imageSlug string, page, pageSize int) ([]*types.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, userID int64) error
}

type CommentService struct {
	CommentDAO *dao.Comment
	ImageDAO   *dao.Image
	UsersDAO   *dao.Users
}

// AddComment 发表评论
func (s *CommentService) AddComment(ctx context.Context, imageSlug string, userID int64, req *types.CreateCommentRequest) (*types.CommentResponse, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, response.Invalid("评论内容不能为空")
	}

	image, err := s.ImageDAO.FindBySlug(ctx, imageSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}
	author, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("用户不存在")
		}
		return nil, err
	}

	comment := &models.Comment{
		ID:       snowflake.GenID(),
		ImageID:  image.ID,
		AuthorID: userID,
		Content:  content,
	}
	if err := s.CommentDAO.Create(ctx, comment); err != nil {
		return nil, err
	}

	return &types.CommentResponse{
		ID:        comment.ID,
		ImageID:   comment.ImageID,
		AuthorID:  comment.AuthorID,
		Author:    author.Username,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}, nil
}

// ListComments 评论列表，时间倒序
func (s *CommentService) ListComments(ctx context.Context, imageSlug string, page, pageSize int) ([]*types.CommentResponse, error) {
	if page < 1 {
		page = types.DefaultPage
	}
	if pageSize < 1 {
		pageSize = types.DefaultPageSize
	}

	image, err := s.ImageDAO.FindBySlug(ctx, imageSlug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("图片不存在")
		}
		return nil, err
	}

	comments, err := s.CommentDAO.ListByImage(ctx, image.ID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}

	result := make([]*types.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		resp := &types.CommentResponse{
			ID:        comment.ID,
			ImageID:   comment.ImageID,
			AuthorID:  comment.AuthorID,
			Content:   comment.Content,
			CreatedAt: comment.CreatedAt,
		}
		if author, err := s.UsersDAO.FindById(ctx, comment.AuthorID); err == nil {
			resp.Author = author.Username
		}
		result = append(result, resp)
	}
	return result, nil
}

// DeleteComment 只有评论作者本人可以删除
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID int64) error {
	comment, err := s.CommentDAO.FindById(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound("评论不存在")
		}
		return err
	}
	if comment.AuthorID != userID {
		return response.Forbidden("只能删除自己的评论")
	}
	return s.CommentDAO.Delete(ctx, commentID)
}
