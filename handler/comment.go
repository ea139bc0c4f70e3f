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

type Comment struct {
	Config         *config.Config
	CommentService service.ICommentService
}

func (h *Comment) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))

	r.GET("/v1/images/:slug/comments", context.Wrap(h.ListComments))
	r.POST("/v1/images/:slug/comments", authorize, context.Wrap(h.AddComment))
	r.DELETE("/v1/comments/:id", authorize, context.Wrap(h.DeleteComment))
}

// AddComment 发表评论
func (h *Comment) AddComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return response.NewError(http.StatusBadRequest, "参数格式错误: "+err.Error())
	}

	comment, err := h.CommentService.AddComment(c.Request.Context(), c.Param("slug"), userID, &req)
	if err != nil {
		return err
	}
	response.Success(c, comment)
	return nil
}

// ListComments 评论列表
func (h *Comment) ListComments(c *gin.Context) error {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	comments, err := h.CommentService.ListComments(c.Request.Context(), c.Param("slug"), page, pageSize)
	if err != nil {
		return err
	}
	response.Success(c, comments)
	return nil
}

// DeleteComment 删除自己的评论
func (h *Comment) DeleteComment(c *gin.Context) error {
	userID, err := context.GetUserID(c)
	if err != nil {
		return response.NewError(http.StatusUnauthorized, "未登录")
	}

	commentID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || commentID == 0 {
		return response.NewError(http.StatusBadRequest, "评论 id 参数错误")
	}

	if err := h.CommentService.DeleteComment(c.Request.Context(), commentID, userID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
