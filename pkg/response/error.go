package response

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

type BizError struct {
	Code int
	Msg  string
}

func (e *BizError) Error() string {
	return e.Msg
}

func NewError(code int, msg string) *BizError {
	return &BizError{
		Code: code,
		Msg:  msg,
	}
}

func Abort(c *gin.Context, httpStatus int, msg string) {
	c.AbortWithStatusJSON(httpStatus, Response{
		Code: httpStatus,
		Msg:  msg,
		Data: nil,
	})
}

// 业务错误分类，code 与 HTTP 语义对齐

// Invalid 参数/文件校验失败
func Invalid(msg string) *BizError {
	return NewError(http.StatusBadRequest, msg)
}

// Forbidden 无权操作他人资源
func Forbidden(msg string) *BizError {
	return NewError(http.StatusForbidden, msg)
}

// NotFound 资源不存在
func NotFound(msg string) *BizError {
	return NewError(http.StatusNotFound, msg)
}

// Conflict 唯一约束冲突（并发下兜底）
func Conflict(msg string) *BizError {
	return NewError(http.StatusConflict, msg)
}
