package dao

import (
	"Gallery/models"
	"context"

	"gorm.io/gorm"
)

type AuthorProfile struct {
	Repo[models.AuthorProfile]
}

func NewAuthorProfile(db *gorm.DB) *AuthorProfile {
	return &AuthorProfile{
		Repo: NewRepo[models.AuthorProfile](db),
	}
}

// FindByUserID 根据用户查档案
func (d *AuthorProfile) FindByUserID(ctx context.Context, userID int64) (*models.AuthorProfile, error) {
	return d.Repo.FindByWhere(ctx, "user_id = ?", userID)
}

// GetOrCreateByUserID 老用户可能没有档案，补一条
func (d *AuthorProfile) GetOrCreateByUserID(ctx context.Context, userID int64) (*models.AuthorProfile, error) {
	profile := &models.AuthorProfile{UserID: userID}
	err := d.Db.WithContext(ctx).
		Where("user_id = ?", userID).
		FirstOrCreate(profile).Error
	return profile, err
}

// UpdateByUserID 更新档案字段
func (d *AuthorProfile) UpdateByUserID(ctx context.Context, userID int64, updates map[string]any) error {
	if len(updates) == 0 {
		return nil
	}
	return d.Db.WithContext(ctx).
		Model(&models.AuthorProfile{}).
		Where("user_id = ?", userID).
		Updates(updates).Error
}
