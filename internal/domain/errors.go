package domain

import "net/http"

// Error 领域错误：携带 HTTP 状态码 + 描述，由 transport 层统一序列化
type Error struct {
	Status int
	Detail string
}

func (e *Error) Error() string { return e.Detail }

func NotFound(detail string) *Error     { return &Error{Status: http.StatusNotFound, Detail: detail} }
func Conflict(detail string) *Error     { return &Error{Status: http.StatusConflict, Detail: detail} }
func BadRequest(detail string) *Error   { return &Error{Status: http.StatusBadRequest, Detail: detail} }
func Unauthorized(detail string) *Error { return &Error{Status: http.StatusUnauthorized, Detail: detail} }
func Forbidden(detail string) *Error    { return &Error{Status: http.StatusForbidden, Detail: detail} }
