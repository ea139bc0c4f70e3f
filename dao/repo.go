package dao

import (
	"context"

	"gorm.io/gorm"
)

// Repo 通用 DAO，按实体类型嵌入使用
type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

func (r *Repo[T]) Create(ctx context.Context, data *T) error {
	return r.Db.WithContext(ctx).Create(data).Error
}

func (r *Repo[T]) FindById(ctx context.Context, id any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	var item T
	err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *Repo[T]) FindAll(ctx context.Context, where string, args ...any) ([]*T, error) {
	var items []*T
	err := r.Db.WithContext(ctx).Where(where, args...).Find(&items).Error
	return items, err
}

// IsExist 是否存在满足条件的记录
func (r *Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	var model T
	var count int64
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Limit(1).Count(&count).Error
	return count > 0, err
}

// Count 条件计数
func (r *Repo[T]) Count(ctx context.Context, where string, args ...any) (int64, error) {
	var model T
	var count int64
	err := r.Db.WithContext(ctx).Model(&model).Where(where, args...).Count(&count).Error
	return count, err
}

func (r *Repo[T]) DeleteById(ctx context.Context, id any) error {
	var model T
	return r.Db.WithContext(ctx).Where("id = ?", id).Delete(&model).Error
}
