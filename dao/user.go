package dao

import (
	"Gallery/models"
	"context"

	"gorm.io/gorm"
)

type Users struct {
	Repo[models.Users]
}

func NewUsers(db *gorm.DB) *Users {
	return &Users{
		Repo: NewRepo[models.Users](db),
	}
}

// FindByUsername 用户名查询
func (u *Users) FindByUsername(ctx context.Context, username string) (*models.Users, error) {
	return u.Repo.FindByWhere(ctx, "username = ?", username)
}

// IsUsernameExist 判断用户名是否存在
func (u *Users) IsUsernameExist(ctx context.Context, username string) bool {
	exist, _ := u.Repo.IsExist(ctx, "username = ?", username)
	return exist
}

// CreateWithProfile 注册事务：用户与作者档案同生共死
func (u *Users) CreateWithProfile(ctx context.Context, user *models.Users) (*models.AuthorProfile, error) {
	profile := &models.AuthorProfile{}
	err := u.Db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
