package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"library-api/internal/domain"
	"library-api/internal/service"
	resp "library-api/internal/transport/http/response"
	"library-api/pkg/dbtime"
)

type BookHandler struct {
	svc *service.BookService
}

func NewBookHandler(svc *service.BookService) *BookHandler { return &BookHandler{svc: svc} }

type bookCreateIn struct {
	Title           string       `json:"title" binding:"required,min=1,max=200"`
	Author          string       `json:"author" binding:"required,min=1,max=200"`
	ISBN            string       `json:"isbn" binding:"required,number,min=10,max=13"`
	Publisher       string       `json:"publisher" binding:"omitempty,max=200"`
	PublicationDate *dbtime.Date `json:"publication_date"`
	NumberOfCopies  int          `json:"number_of_copies" binding:"omitempty,gte=1"`
}

func (h *BookHandler) Create(c *gin.Context) {
	var in bookCreateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	if in.NumberOfCopies == 0 {
		in.NumberOfCopies = 1
	}
	b, err := h.svc.Create(c.Request.Context(), service.BookCreateInput{
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		Publisher:       in.Publisher,
		PublicationDate: in.PublicationDate,
		NumberOfCopies:  in.NumberOfCopies,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

type bookListQuery struct {
	pageQuery
	Title  string `form:"title"`
	Author string `form:"author"`
	ISBN   string `form:"isbn"`
	Sort   string `form:"sort" binding:"omitempty,oneof=title author publication_date"`
	Order  string `form:"order,default=asc" binding:"oneof=asc desc"`
}

func (h *BookHandler) List(c *gin.Context) {
	var q bookListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	books, err := h.svc.List(c.Request.Context(), domain.BookFilter{
		Title:  q.Title,
		Author: q.Author,
		ISBN:   q.ISBN,
		Sort:   q.Sort,
		Order:  q.Order,
		Skip:   q.Skip,
		Limit:  q.Limit,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, books)
}

func (h *BookHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type bookUpdateIn struct {
	Title           *string      `json:"title" binding:"omitempty,min=1,max=200"`
	Author          *string      `json:"author" binding:"omitempty,min=1,max=200"`
	ISBN            *string      `json:"isbn" binding:"omitempty,number,min=10,max=13"`
	Publisher       *string      `json:"publisher" binding:"omitempty,max=200"`
	PublicationDate *dbtime.Date `json:"publication_date"`
	NumberOfCopies  *int         `json:"number_of_copies" binding:"omitempty,gte=1"`
	AvailableCopies *int         `json:"available_copies" binding:"omitempty,gte=0"`
}

func (h *BookHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var in bookUpdateIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.ValidationErr(c, err)
		return
	}
	b, err := h.svc.Update(c.Request.Context(), id, service.BookPatch{
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		Publisher:       in.Publisher,
		PublicationDate: in.PublicationDate,
		NumberOfCopies:  in.NumberOfCopies,
		AvailableCopies: in.AvailableCopies,
	})
	if err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		resp.FromError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Book deleted successfully"})
}
