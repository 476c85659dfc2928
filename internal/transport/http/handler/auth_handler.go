package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/service"
	mdw "library-api/internal/transport/http/middleware"
	resp "library-api/internal/transport/http/response"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler { return &AuthHandler{svc: svc} }

type registerIn struct {
	Username  string `json:"username" binding:"required,alphanum,min=3,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name" binding:"required,min=1,max=50"`
	LastName  string `json:"last_name" binding:"required,min=1,max=50"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in registerIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	u, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Username:  in.Username,
		Email:     in.Email,
		Password:  in.Password,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// 登录走表单（OAuth2 password flow 的惯例），不是 JSON
type loginIn struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in loginIn
	if err := c.ShouldBind(&in); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	token, err := h.svc.Login(c.Request.Context(), in.Username, in.Password)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	u, err := h.svc.CurrentUser(c.Request.Context(), c.GetString(mdw.KeyUsername))
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}
