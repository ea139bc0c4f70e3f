package service

import (
	"Gallery/config"
	"Gallery/dao"
	"Gallery/models"
	"Gallery/pkg/database"
	"Gallery/pkg/storage"
	"Gallery/types"
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv 把全部服务装配在一个内存库上，结构与注入器一致
type testEnv struct {
	DB         *gorm.DB
	Users      *UserService
	Categories *CategoryService
	Tags       *TagService
	Engagement *EngagementService
	Images     *ImageService
	Comments   *CommentService
	Config     *config.Config
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)
	// 内存库每个连接各自独立，收敛到单连接
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, database.Migrate(db))
	return db
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := newTestDB(t)
	cfg := &config.Config{
		Jwt:     &config.Jwt{Secret: "test-secret", ExpireHours: 24},
		Storage: &config.Storage{Root: t.TempDir()},
		Upload:  &config.Upload{},
	}
	disk := storage.NewDisk(cfg)

	usersDAO := dao.NewUsers(db)
	profileDAO := dao.NewAuthorProfile(db)
	categoryDAO := dao.NewCategory(db)
	tagDAO := dao.NewTag(db)
	imageDAO := dao.NewImage(db)
	likeDAO := dao.NewImageLike(db)
	viewDAO := dao.NewImageView(db)
	commentDAO := dao.NewComment(db)

	tagService := &TagService{TagDAO: tagDAO, ImageDAO: imageDAO, CategoryDAO: categoryDAO}
	engagement := &EngagementService{ImageDAO: imageDAO, LikeDAO: likeDAO, ViewDAO: viewDAO, CommentDAO: commentDAO}
	return &testEnv{
		DB:         db,
		Users:      &UserService{UsersDAO: usersDAO, ProfileDAO: profileDAO, Disk: disk, Config: cfg},
		Categories: &CategoryService{CategoryDAO: categoryDAO},
		Tags:       tagService,
		Engagement: engagement,
		Images: &ImageService{
			ImageDAO:    imageDAO,
			UsersDAO:    usersDAO,
			CategoryDAO: categoryDAO,
			TagService:  tagService,
			Engagement:  engagement,
			Disk:        disk,
			Config:      cfg,
		},
		Comments: &CommentService{CommentDAO: commentDAO, ImageDAO: imageDAO, UsersDAO: usersDAO},
		Config:   cfg,
	}
}

// createTestUser 直接落库，绕开 bcrypt 加速测试
func (e *testEnv) createTestUser(t *testing.T, username string) *models.Users {
	t.Helper()
	user := &models.Users{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	_, err := e.Users.UsersDAO.CreateWithProfile(context.Background(), user)
	require.NoError(t, err)
	return user
}

func (e *testEnv) createTestCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category, err := e.Categories.CreateCategory(context.Background(), &types.CreateCategoryRequest{Name: name})
	require.NoError(t, err)
	return category
}

func (e *testEnv) createTestTag(t *testing.T, name string, categoryID int64) *models.Tag {
	t.Helper()
	tag, err := e.Tags.CreateTag(context.Background(), &types.CreateTagRequest{Name: name, CategoryID: categoryID})
	require.NoError(t, err)
	return tag
}

// pngUpload 在内存里编码一张指定尺寸的 PNG
func pngUpload(t *testing.T, filename string, w, h int) *types.Upload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return &types.Upload{
		Filename:    filename,
		ContentType: "image/png",
		Size:        int64(buf.Len()),
		Reader:      &buf,
	}
}

// uploadImage 标准上传流程的快捷方式
func (e *testEnv) uploadImage(t *testing.T, userID int64, title string, req *types.CreateImageRequest) *models.Image {
	t.Helper()
	if req == nil {
		req = &types.CreateImageRequest{}
	}
	req.Title = title
	created, err := e.Images.CreateImage(context.Background(), userID, req, pngUpload(t, "photo.png", 64, 48))
	require.NoError(t, err)
	return created
}
