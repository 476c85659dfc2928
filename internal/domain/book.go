package domain

import (
	"context"

	"library-api/pkg/dbtime"
)

type Book struct {
	ID              uint         `gorm:"primaryKey" json:"id"`
	Title           string       `gorm:"size:200;index;not null" json:"title"`
	Author          string       `gorm:"size:200;index;not null" json:"author"`
	ISBN            string       `gorm:"column:isbn;uniqueIndex;size:13;not null" json:"isbn"`
	Publisher       string       `gorm:"size:200" json:"publisher"`
	PublicationDate *dbtime.Date `json:"publication_date"`
	NumberOfCopies  int          `gorm:"not null;default:1" json:"number_of_copies"`
	AvailableCopies int          `gorm:"not null;default:1" json:"available_copies"`
}

func (Book) TableName() string { return "books" }

// BookFilter 列表查询条件；Sort 仅限 title/author/publication_date
type BookFilter struct {
	Title  string
	Author string
	ISBN   string
	Sort   string
	Order  string
	Skip   int
	Limit  int
}

type BookRepository interface {
	Create(ctx context.Context, b *Book) error
	FindByID(ctx context.Context, id uint) (*Book, error)
	FindByISBN(ctx context.Context, isbn string) (*Book, error)
	List(ctx context.Context, f BookFilter) ([]Book, error)
	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uint) error
}
