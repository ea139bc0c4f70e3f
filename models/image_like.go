package models

import "time"

// ImageLike 点赞记录
// 唯一键 image_id + user_id，并发重复插入由唯一约束兜底
type ImageLike struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ImageID   int64     `gorm:"column:image_id;not null;uniqueIndex:uk_like_image_user,priority:1" json:"image_id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_like_image_user,priority:2" json:"user_id"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (ImageLike) TableName() string {
	return "image_likes"
}
