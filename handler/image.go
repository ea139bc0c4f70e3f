package handler

import (
	"Gallery/config"
	"Gallery/middleware"
	"Gallery/pkg/context"
	"Gallery/pkg/response"
	"Gallery/service"
	"Gallery/types"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Image struct {
	Config            *config.Config
	ImageService      service.IImageService
	EngagementService service.IEngagementService
}

func (h *Image) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	authorize := middleware.Auth(secret)
	optional := middleware.OptionalAuth(secret)

	g := r.Group("/v1/images")
	g.GET("", context.Wrap(h.ListImages))
	g.GET("/:slug", optional, context.Wrap(h.GetImage))
	g.GET("/:slug/similar", context.Wrap(h.ListSimilar))
	g.POST("", authorize, context.Wrap(h.CreateImage))
	g.PUT("/:slug", authorize, context.Wrap(h.UpdateImage))
	g.DELETE("/:slug", authorize, context.Wrap(h.DeleteImage))
	g.POST("/:slug/like", authorize, context.Wrap(h.ToggleLike))
}

// CreateImage 上传图片，multipart 表单，文件字段名 image
func (h *Image) CreateImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateImageRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	header, err := c.FormFile("image")
	if err != nil {
		return response.NewError(http.StatusBadRequest, "缺少图片文件")
	}
	upload, closeFn, err := types.NewUpload(header)
	if err != nil {
		return response.NewError(http.StatusBadRequest, err.Error())
	}
	defer closeFn()

	image, err := h.ImageService.CreateImage(c.Request.Context(), userID, &req, upload)
	if err != nil {
		return err
	}
	response.Success(c, image)
	return nil
}

// ListImages 列表，?q= 标题搜索，?category= 分类 slug 过滤
func (h *Image) ListImages(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	resp, err := h.ImageService.ListImages(
		c.Request.Context(),
		c.Query("q"),
		c.Query("category"),
		page, pageSize,
	)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// GetImage 详情，访问即记一次浏览（同一身份只记一次）
func (h *Image) GetImage(c *gin.Context) error {
	viewerID := context.OptionalUserID(c)
	detail, err := h.ImageService.GetDetail(
		c.Request.Context(),
		c.Param("slug"),
		viewerID,
		c.ClientIP(),
	)
	if err != nil {
		return err
	}
	response.Success(c, detail)
	return nil
}

// ListSimilar 相关推荐，最多 6 张
func (h *Image) ListSimilar(c *gin.Context) error {
	items, err := h.ImageService.ListSimilar(c.Request.Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	response.Success(c, items)
	return nil
}

// UpdateImage 作者编辑，文件字段可选
func (h *Image) UpdateImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.UpdateImageRequest
	if err := c.ShouldBind(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	var upload *types.Upload
	if header, err := c.FormFile("image"); err == nil {
		u, closeFn, err := types.NewUpload(header)
		if err != nil {
			return response.NewError(http.StatusBadRequest, err.Error())
		}
		defer closeFn()
		upload = u
	}

	image, err := h.ImageService.UpdateImage(c.Request.Context(), userID, c.Param("slug"), &req, upload)
	if err != nil {
		return err
	}
	response.Success(c, image)
	return nil
}

// DeleteImage 作者删除
func (h *Image) DeleteImage(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	if err := h.ImageService.DeleteImage(c.Request.Context(), userID, c.Param("slug")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

// ToggleLike 点赞/取消点赞
func (h *Image) ToggleLike(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}
	resp, err := h.EngagementService.ToggleLikeBySlug(c.Request.Context(), c.Param("slug"), userID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
