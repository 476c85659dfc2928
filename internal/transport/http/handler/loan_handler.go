package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domain"
	"library-api/internal/service"
	resp "library-api/internal/transport/http/response"
	"library-api/pkg/dbtime"
)

type LoanHandler struct {
	svc *service.LoanService
}

func NewLoanHandler(svc *service.LoanService) *LoanHandler { return &LoanHandler{svc: svc} }

type loanCreateIn struct {
	BookID   uint         `json:"book_id" binding:"required,gte=1"`
	MemberID uint         `json:"member_id" binding:"required,gte=1"`
	LoanDate *dbtime.Date `json:"loan_date"`
	DueDate  *dbtime.Date `json:"due_date"`
}

func (h *LoanHandler) Create(c *gin.Context) {
	var in loanCreateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	d, err := h.svc.Checkout(c.Request.Context(), service.CheckoutInput{
		BookID:   in.BookID,
		MemberID: in.MemberID,
		LoanDate: in.LoanDate,
		DueDate:  in.DueDate,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, d)
}

type loanListQuery struct {
	pageQuery
	Status string `form:"status" binding:"omitempty,oneof='En cours' 'Retourné' 'En retard'"`
}

func (h *LoanHandler) List(c *gin.Context) {
	var q loanListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	loans, err := h.svc.List(c.Request.Context(), domain.LoanFilter{
		Status: q.Status,
		Skip:   q.Skip,
		Limit:  q.Limit,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}

func (h *LoanHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

// Return 即 PUT /loans/:id——借阅行唯一一次状态迁移
func (h *LoanHandler) Return(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	d, err := h.svc.Return(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (h *LoanHandler) Overdue(c *gin.Context) {
	loans, err := h.svc.Overdue(c.Request.Context())
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, loans)
}
