package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"library-api/internal/core/auth"
	resp "library-api/internal/transport/http/response"
)

const (
	KeyUsername = "username"
	KeyRole     = "role"
)

// AuthJWT 解析 Bearer token，把 sub（用户名）和 role 放进上下文。
// 缺失、签名错、过期一律 401。
func AuthJWT(j *auth.JWTer) gin.HandlerFunc {
	return func(c *gin.Context) {
		ah := c.GetHeader("Authorization")
		if !strings.HasPrefix(ah, "Bearer ") {
			resp.AbortErr(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		claims, err := j.Parse(strings.TrimPrefix(ah, "Bearer "))
		if err != nil {
			resp.AbortErr(c, http.StatusUnauthorized, "Could not validate credentials")
			return
		}
		c.Set(KeyUsername, claims.Subject)
		c.Set(KeyRole, claims.Role)
		c.Next()
	}
}

// RequireRole 角色闸门，挂在需要管理员的路由组上
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(KeyRole) != role {
			resp.AbortErr(c, http.StatusForbidden, "Insufficient privileges")
			return
		}
		c.Next()
	}
}
