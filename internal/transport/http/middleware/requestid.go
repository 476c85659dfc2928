package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const KeyRequestID = "X-Request-ID"

// RequestID 给每个请求一个关联 id，透传到响应头和访问日志。
// 来路的值必须是合法 uuid 才复用，避免日志里混进任意客户端字符串。
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader(KeyRequestID)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}
		c.Header(KeyRequestID, rid)
		c.Set(KeyRequestID, rid)
		c.Next()
	}
}
