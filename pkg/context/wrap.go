package context

import (
	"Gallery/pkg/response"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

type HandlerFunc func(*gin.Context) error

func Wrap(h func(*gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h(c); err != nil {

			// 如果已经写过响应，直接返回
			if c.Writer.Written() {
				return
			}
			// 业务错误
			var be *response.BizError
			if errors.As(err, &be) {
				c.JSON(http.StatusOK, response.Response{
					Code: be.Code,
					Msg:  be.Msg,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, response.Response{
				Code: 500,
				Msg:  err.Error(),
			})
		}
	}
}

func GetUserID(c *gin.Context) (int64, error) {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0, errors.New("user_id 不存在")
	}

	uid, ok := v.(int64)
	if !ok {
		return 0, errors.New("user_id 类型错误")
	}

	return uid, nil
}

// OptionalUserID 未登录返回 0（浏览记录、点赞状态等匿名可访问场景用）
func OptionalUserID(c *gin.Context) int64 {
	v, ok := c.Get(CtxUserID)
	if !ok {
		return 0
	}
	uid, _ := v.(int64)
	return uid
}

func GetUsername(c *gin.Context) string {
	v, ok := c.Get(CtxUsername)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}
