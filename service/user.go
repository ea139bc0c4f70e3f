package service

import (
	"Gallery/config"
	"Gallery/dao"
	"Gallery/models"
	"Gallery/pkg/encrypt"
	"Gallery/pkg/jwt"
	"Gallery/pkg/response"
	"Gallery/pkg/storage"
	"Gallery/types"
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/gorm"
)

var _ IUserService = (*UserService)(nil)

type IUserService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error)
	Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error)
	GetProfile(ctx context.Context, userID int64) (*types.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error
	UpdateAvatar(ctx context.Context, userID int64, upload *types.Upload) (string, error)
}

type UserService struct {
	UsersDAO   *dao.Users
	ProfileDAO *dao.AuthorProfile
	Disk       *storage.Disk
	Config     *config.Config
}

// Register 注册
// 用户和作者档案在同一事务里创建，不存在有用户没档案的中间态
func (s *UserService) Register(ctx context.Context, req *types.RegisterRequest) (*types.TokenResponse, error) {
	if s.UsersDAO.IsUsernameExist(ctx, req.Username) {
		return nil, response.Conflict("用户名已存在")
	}

	hash, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	user := &models.Users{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if _, err := s.UsersDAO.CreateWithProfile(ctx, user); err != nil {
		// 预检和插入之间被别人抢注
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.Conflict("用户名已存在")
		}
		return nil, err
	}

	return s.issueToken(user)
}

// Login 登录
func (s *UserService) Login(ctx context.Context, req *types.LoginRequest) (*types.TokenResponse, error) {
	user, err := s.UsersDAO.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
		}
		return nil, err
	}
	if !encrypt.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, response.NewError(http.StatusUnauthorized, "用户名或密码错误")
	}
	return s.issueToken(user)
}

func (s *UserService) issueToken(user *models.Users) (*types.TokenResponse, error) {
	expire := time.Duration(s.Config.Jwt.ExpireHours) * time.Hour
	token, err := jwt.GenerateToken([]byte(s.Config.Jwt.Secret), user.ID, user.Username, expire)
	if err != nil {
		return nil, err
	}
	return &types.TokenResponse{
		UserID:   user.ID,
		Username: user.Username,
		Token:    token,
	}, nil
}

// GetProfile 查档案，历史数据缺档案时补建
func (s *UserService) GetProfile(ctx context.Context, userID int64) (*types.ProfileResponse, error) {
	user, err := s.UsersDAO.FindById(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NotFound("用户不存在")
		}
		return nil, err
	}
	profile, err := s.ProfileDAO.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &types.ProfileResponse{
		UserID:   user.ID,
		Username: user.Username,
		Bio:      profile.Bio,
		Avatar:   profile.Avatar,
	}, nil
}

// UpdateProfile 编辑简介
func (s *UserService) UpdateProfile(ctx context.Context, userID int64, req *types.UpdateProfileRequest) error {
	if _, err := s.ProfileDAO.GetOrCreateByUserID(ctx, userID); err != nil {
		return err
	}
	return s.ProfileDAO.UpdateByUserID(ctx, userID, map[string]any{"bio": req.Bio})
}

// UpdateAvatar 上传头像，对象名随机生成，旧头像文件删除
// 类型判定与图片上传一致：content-type 缺失时退回扩展名
func (s *UserService) UpdateAvatar(ctx context.Context, userID int64, upload *types.Upload) (string, error) {
	if upload.ContentType != "" {
		if !allowedMimeTypes[strings.ToLower(upload.ContentType)] {
			return "", response.Invalid("不支持的文件格式，仅支持 JPG/PNG/GIF/WEBP")
		}
	} else if !allowedExtensions[strings.ToLower(filepath.Ext(upload.Filename))] {
		return "", response.Invalid("不支持的文件格式（扩展名）")
	}
	if upload.Size > s.Config.Upload.MaxUploadBytes() {
		return "", response.Invalid("文件过大，最大 5MB")
	}

	profile, err := s.ProfileDAO.GetOrCreateByUserID(ctx, userID)
	if err != nil {
		return "", err
	}

	rel := storage.AvatarPath(upload.Filename)
	if err := s.Disk.SaveReader(upload.Reader, rel); err != nil {
		return "", err
	}
	if err := s.ProfileDAO.UpdateByUserID(ctx, userID, map[string]any{"avatar": rel}); err != nil {
		return "", err
	}
	if profile.Avatar != "" {
		_ = s.Disk.Remove(profile.Avatar)
	}
	return rel, nil
}
