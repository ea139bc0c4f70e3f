package handler

import (
	"Gallery/config"
	"Gallery/middleware"
	"Gallery/pkg/context"
	"Gallery/pkg/response"
	"Gallery/service"
	"Gallery/types"
	"net/http"

	"github.com/gin-gonic/gin"
)

type User struct {
	Config      *config.Config
	UserService service.IUserService
}

func (h *User) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	auth := r.Group("/v1/auth")
	auth.POST("/register", context.Wrap(h.Register))
	auth.POST("/login", context.Wrap(h.Login))

	profile := r.Group("/v1/profile", authorize)
	profile.GET("", context.Wrap(h.GetProfile))
	profile.PUT("", context.Wrap(h.UpdateProfile))
	profile.POST("/avatar", context.Wrap(h.UpdateAvatar))
}

// Register 注册并返回 token
func (h *User) Register(c *gin.Context) error {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	resp, err := h.UserService.Register(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Login 登录
func (h *User) Login(c *gin.Context) error {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	resp, err := h.UserService.Login(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *User) GetProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	profile, err := h.UserService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		return err
	}
	response.Success(c, profile)
	return nil
}

func (h *User) UpdateProfile(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}
	if err := h.UserService.UpdateProfile(c.Request.Context(), userID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// UpdateAvatar 上传头像，文件字段名 avatar
func (h *User) UpdateAvatar(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	header, err := c.FormFile("avatar")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少头像文件")
	}
	upload, closeFn, err := types.NewUpload(header)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	defer closeFn()

	rel, err := h.UserService.UpdateAvatar(c.Request.Context(), userID, upload)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"avatar": rel})
	return nil
}
