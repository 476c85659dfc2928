package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"library-api/internal/domain"
)

// Body 错误响应统一形态：{"detail": ..., "status_code": N}
type Body struct {
	Detail     any `json:"detail"`
	StatusCode int `json:"status_code"`
}

func Err(c *gin.Context, status int, detail any) {
	c.JSON(status, Body{Detail: detail, StatusCode: status})
}

func AbortErr(c *gin.Context, status int, detail any) {
	c.AbortWithStatusJSON(status, Body{Detail: detail, StatusCode: status})
}

// FromError 领域错误带着自己的状态码；其余一律 500
func FromError(c *gin.Context, err error) {
	var de *domain.Error
	if errors.As(err, &de) {
		Err(c, de.Status, de.Detail)
		return
	}
	_ = c.Error(err) // 交给访问日志
	Err(c, http.StatusInternalServerError, "Internal Server Error")
}

type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

// ValidationErr 绑定/校验失败 → 422，validator 错误展开成字段级明细
func ValidationErr(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			details = append(details, FieldError{Field: fe.Field(), Error: fe.Tag()})
		}
		Err(c, http.StatusUnprocessableEntity, details)
		return
	}
	Err(c, http.StatusUnprocessableEntity, err.Error())
}
