package models

import "time"

// Image 图片主表
// width/height/file_size 由采集阶段从物理文件回写，可能为 NULL（软失败）
type Image struct {
	ID          int64     `gorm:"column:id;primaryKey" json:"id"`
	Title       string    `gorm:"column:title;type:varchar(100);not null" json:"title"`
	Slug        string    `gorm:"column:slug;type:varchar(120);not null;uniqueIndex:uk_image_slug" json:"slug"`
	Description string    `gorm:"column:description;type:text" json:"description"`
	AuthorID    int64     `gorm:"column:author_id;not null;index:idx_image_author" json:"author_id"`
	Author      *Users    `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	CategoryID  *int64    `gorm:"column:category_id;index:idx_image_category" json:"category_id,omitempty"`
	Category    *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	Tags        []*Tag    `gorm:"many2many:image_tags" json:"tags,omitempty"`
	FilePath    string    `gorm:"column:file_path;type:varchar(255);not null" json:"file_path"`
	Width       *int      `gorm:"column:width" json:"width,omitempty"`
	Height      *int      `gorm:"column:height" json:"height,omitempty"`
	FileSize    *int64    `gorm:"column:file_size" json:"file_size,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at;index:idx_image_created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Image) TableName() string {
	return "images"
}
