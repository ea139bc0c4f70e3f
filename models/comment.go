package models

import "time"

type Comment struct {
	ID        int64     `gorm:"column:id;primaryKey" json:"id"`
	ImageID   int64     `gorm:"column:image_id;not null;index:idx_comment_image" json:"image_id"`
	AuthorID  int64     `gorm:"column:author_id;not null;index:idx_comment_author" json:"author_id"`
	Content   string    `gorm:"column:content;type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
