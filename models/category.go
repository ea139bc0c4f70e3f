package models

import "time"

type Category struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(50);not null;uniqueIndex:uk_category_name" json:"name"`
	Slug      string    `gorm:"column:slug;type:varchar(80);not null;uniqueIndex:uk_category_slug" json:"slug"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Category) TableName() string {
	return "categories"
}
