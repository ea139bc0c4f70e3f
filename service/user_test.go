package service

import (
	"Gallery/models"
	"Gallery/pkg/jwt"
	"Gallery/pkg/response"
	"Gallery/types"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesProfile(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	resp, err := env.Users.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", resp.Username)
	assert.NotEmpty(t, resp.Token)

	// 档案在注册事务里同步建立
	var profile models.AuthorProfile
	require.NoError(t, env.DB.Where("user_id = ?", resp.UserID).First(&profile).Error)

	// token 可解析且指向本人
	claims, err := jwt.ParseToken([]byte(env.Config.Jwt.Secret), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.UserID, claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	req := &types.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	}
	_, err := env.Users.Register(ctx, req)
	require.NoError(t, err)

	_, err = env.Users.Register(ctx, req)
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, http.StatusConflict, biz.Code)

	// 失败注册不留半个用户
	var count int64
	require.NoError(t, env.DB.Model(&models.Users{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Users.Register(ctx, &types.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cret-password",
	})
	require.NoError(t, err)

	resp, err := env.Users.Login(ctx, &types.LoginRequest{Username: "alice", Password: "s3cret-password"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)

	var biz *response.BizError

	_, err = env.Users.Login(ctx, &types.LoginRequest{Username: "alice", Password: "wrong"})
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, http.StatusUnauthorized, biz.Code)

	// 用户不存在和密码错误不可区分
	_, err = env.Users.Login(ctx, &types.LoginRequest{Username: "nobody", Password: "whatever"})
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, http.StatusUnauthorized, biz.Code)
}

func TestProfileUpdate(t *testing.T) {
	env := newTestEnv(t)
	user := env.createTestUser(t, "alice")
	ctx := context.Background()

	require.NoError(t, env.Users.UpdateProfile(ctx, user.ID, &types.UpdateProfileRequest{Bio: "landscape shooter"}))

	profile, err := env.Users.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, "landscape shooter", profile.Bio)

	_, err = env.Users.GetProfile(ctx, 9999)
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, http.StatusNotFound, biz.Code)
}

func TestUpdateAvatar(t *testing.T) {
	env := newTestEnv(t)
	user := env.createTestUser(t, "alice")
	ctx := context.Background()

	rel, err := env.Users.UpdateAvatar(ctx, user.ID, pngUpload(t, "face.png", 16, 16))
	require.NoError(t, err)
	_, err = env.Users.Disk.Size(rel)
	assert.NoError(t, err)

	// 换头像后旧文件清理
	rel2, err := env.Users.UpdateAvatar(ctx, user.ID, pngUpload(t, "face2.png", 16, 16))
	require.NoError(t, err)
	assert.NotEqual(t, rel, rel2)
	_, err = env.Users.Disk.Size(rel)
	assert.Error(t, err)

	profile, err := env.Users.GetProfile(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, rel2, profile.Avatar)
}

func TestUpdateAvatarTypeCheck(t *testing.T) {
	env := newTestEnv(t)
	user := env.createTestUser(t, "alice")
	ctx := context.Background()

	// content-type 明确但不在白名单
	bad := pngUpload(t, "face.png", 16, 16)
	bad.ContentType = "application/pdf"
	_, err := env.Users.UpdateAvatar(ctx, user.ID, bad)
	var biz *response.BizError
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, http.StatusBadRequest, biz.Code)

	// content-type 缺失时按扩展名兜底
	noType := &types.Upload{Filename: "resume.zip", Size: 10, Reader: strings.NewReader("zip")}
	_, err = env.Users.UpdateAvatar(ctx, user.ID, noType)
	require.ErrorAs(t, err, &biz)
	assert.Equal(t, http.StatusBadRequest, biz.Code)

	ok := pngUpload(t, "face.png", 16, 16)
	ok.ContentType = ""
	_, err = env.Users.UpdateAvatar(ctx, user.ID, ok)
	assert.NoError(t, err)
}
