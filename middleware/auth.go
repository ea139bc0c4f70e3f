package middleware

import (
	"net/http"
	"strings"

	"Gallery/pkg/context"
	"Gallery/pkg/jwt"
	"Gallery/pkg/response"

	"github.com/gin-gonic/gin"
)

func Auth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, secret)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, "未登录或登录已过期")
			return
		}
		c.Set(context.CtxUserID, claims.UserID)
		c.Set(context.CtxUsername, claims.Username)

		c.Next()
	}
}

// OptionalAuth 匿名可访问的页面：带合法 token 就识别身份，否则放行
// 浏览去重、点赞状态展示依赖这里注入的身份
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, secret); ok {
			c.Set(context.CtxUserID, claims.UserID)
			c.Set(context.CtxUsername, claims.Username)
		}
		c.Next()
	}
}

func parseBearer(c *gin.Context, secret []byte) (*jwt.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := jwt.ParseToken(secret, parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}
