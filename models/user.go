package models

import "time"

type Users struct {
	ID           int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"column:username;type:varchar(150);not null;uniqueIndex:uk_username" json:"username"`
	Email        string    `gorm:"column:email;type:varchar(254);not null;default:''" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(128);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}

// AuthorProfile 与用户一对一，注册事务里同步创建
type AuthorProfile struct {
	ID        int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;uniqueIndex:uk_profile_user" json:"user_id"`
	Bio       string    `gorm:"column:bio;type:text" json:"bio"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (AuthorProfile) TableName() string {
	return "author_profiles"
}
