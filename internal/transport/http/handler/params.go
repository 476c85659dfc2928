package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	resp "library-api/internal/transport/http/response"
)

// pathID 解析 :id 路径参数；非正整数按校验错误处理，直接写 422
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		resp.Err(c, http.StatusUnprocessableEntity, "id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

type pageQuery struct {
	Skip  int `form:"skip,default=0" binding:"gte=0"`
	Limit int `form:"limit,default=10" binding:"gte=1,lte=100"`
}
