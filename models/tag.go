package models

import "time"

// Tag 同名标签可以挂在不同分类下，(name, category_id) 唯一
// slug 不做唯一约束
type Tag struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex:uk_tag_name_category,priority:1" json:"name"`
	Slug       string    `gorm:"column:slug;type:varchar(80);not null" json:"slug"`
	CategoryID int64     `gorm:"column:category_id;not null;uniqueIndex:uk_tag_name_category,priority:2;index:idx_tag_category" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"category,omitempty"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Tag) TableName() string {
	return "tags"
}
