package database

import (
	"Gallery/config"
	"Gallery/models"
	"Gallery/pkg/log"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// NewDB 初始化数据库连接
// TranslateError 让唯一键冲突以 gorm.ErrDuplicatedKey 暴露，
// 点赞切换和 slug 兜底都依赖这个错误识别并发冲突
func NewDB(conf *config.Config) *gorm.DB {
	dsn := conf.MySQL.Dsn()
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.L.Fatal("failed to connect database", zap.Error(err))
	}
	if err := Migrate(db); err != nil {
		log.L.Fatal("failed to migrate database", zap.Error(err))
	}
	log.L.Info("connect database success")
	return db
}

// Migrate 建表与索引
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Users{},
		&models.AuthorProfile{},
		&models.Category{},
		&models.Tag{},
		&models.Image{},
		&models.ImageLike{},
		&models.ImageView{},
		&models.Comment{},
	)
}
