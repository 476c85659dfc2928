package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domain"
	"library-api/internal/service"
	resp "library-api/internal/transport/http/response"
	"library-api/pkg/dbtime"
)

type MemberHandler struct {
	svc *service.MemberService
}

func NewMemberHandler(svc *service.MemberService) *MemberHandler { return &MemberHandler{svc: svc} }

type memberCreateIn struct {
	MembershipNumber string       `json:"membership_number" binding:"required,min=5,max=20"`
	FirstName        string       `json:"first_name" binding:"required,min=1,max=50"`
	LastName         string       `json:"last_name" binding:"required,min=1,max=50"`
	Email            string       `json:"email" binding:"required,email"`
	PhoneNumber      string       `json:"phone_number" binding:"omitempty,max=20"`
	Address          string       `json:"address" binding:"omitempty,max=200"`
	JoinDate         *dbtime.Date `json:"join_date"`
	UserID           uint         `json:"user_id" binding:"required"`
}

func (h *MemberHandler) Create(c *gin.Context) {
	var in memberCreateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	m, err := h.svc.Create(c.Request.Context(), service.MemberCreateInput{
		MembershipNumber: in.MembershipNumber,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		PhoneNumber:      in.PhoneNumber,
		Address:          in.Address,
		JoinDate:         in.JoinDate,
		UserID:           in.UserID,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

type memberListQuery struct {
	pageQuery
	FirstName string `form:"first_name"`
	LastName  string `form:"last_name"`
	Email     string `form:"email"`
	Sort      string `form:"sort" binding:"omitempty,oneof=first_name last_name join_date"`
	Order     string `form:"order,default=asc" binding:"oneof=asc desc"`
}

func (h *MemberHandler) List(c *gin.Context) {
	var q memberListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	members, err := h.svc.List(c.Request.Context(), domain.MemberFilter{
		FirstName: q.FirstName,
		LastName:  q.LastName,
		Email:     q.Email,
		Sort:      q.Sort,
		Order:     q.Order,
		Skip:      q.Skip,
		Limit:     q.Limit,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *MemberHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type memberUpdateIn struct {
	MembershipNumber *string      `json:"membership_number" binding:"omitempty,min=5,max=20"`
	FirstName        *string      `json:"first_name" binding:"omitempty,min=1,max=50"`
	LastName         *string      `json:"last_name" binding:"omitempty,min=1,max=50"`
	Email            *string      `json:"email" binding:"omitempty,email"`
	PhoneNumber      *string      `json:"phone_number" binding:"omitempty,max=20"`
	Address          *string      `json:"address" binding:"omitempty,max=200"`
	JoinDate         *dbtime.Date `json:"join_date"`
	UserID           *uint        `json:"user_id" binding:"omitempty,gte=1"`
}

func (h *MemberHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in memberUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	m, err := h.svc.Update(c.Request.Context(), id, service.MemberPatch{
		MembershipNumber: in.MembershipNumber,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		PhoneNumber:      in.PhoneNumber,
		Address:          in.Address,
		JoinDate:         in.JoinDate,
		UserID:           in.UserID,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *MemberHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member deleted successfully"})
}
