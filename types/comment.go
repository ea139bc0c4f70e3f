package types

import "time"

// CreateCommentRequest 发表评论
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,max=2000"`
}

// CommentResponse 评论展示
type CommentResponse struct {
	ID        int64     `json:"id"`
	ImageID   int64     `json:"image_id"`
	AuthorID  int64     `json:"author_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
