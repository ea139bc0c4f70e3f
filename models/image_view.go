package models

import "time"

// ImageView 浏览记录，同一身份对同一图片至多一条
// 登录用户走 user_id（ip 置 NULL），匿名走 ip_address（user_id 置 NULL）
// 两个唯一索引互不干扰：NULL 不参与唯一性判定
type ImageView struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ImageID   int64     `gorm:"column:image_id;not null;uniqueIndex:uk_view_image_user,priority:1;uniqueIndex:uk_view_image_ip,priority:1" json:"image_id"`
	UserID    *int64    `gorm:"column:user_id;uniqueIndex:uk_view_image_user,priority:2" json:"user_id,omitempty"`
	IPAddress *string   `gorm:"column:ip_address;type:varchar(45);uniqueIndex:uk_view_image_ip,priority:2" json:"ip_address,omitempty"`
	ViewedAt  time.Time `gorm:"column:viewed_at" json:"viewed_at"`
}

func (ImageView) TableName() string {
	return "image_views"
}
