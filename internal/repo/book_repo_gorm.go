package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"library-api/internal/domain"
)

type BookRepo struct{ db *gorm.DB }

func NewBookRepo(db *gorm.DB) *BookRepo { return &BookRepo{db: db} }

func (r *BookRepo) Create(ctx context.Context, b *domain.Book) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookRepo) FindByID(ctx context.Context, id uint) (*domain.Book, error) {
	var b domain.Book
	err := r.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepo) FindByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	var b domain.Book
	err := r.db.WithContext(ctx).First(&b, "isbn = ?", isbn).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &b, err
}

func (r *BookRepo) List(ctx context.Context, f domain.BookFilter) ([]domain.Book, error) {
	q := r.db.WithContext(ctx).Model(&domain.Book{})
	// LOWER(...) LIKE：postgres/mysql/sqlite 通用的不区分大小写子串匹配
	if s := strings.TrimSpace(f.Title); s != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Author); s != "" {
		q = q.Where("LOWER(author) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.ISBN); s != "" {
		q = q.Where("isbn = ?", s)
	}
	q = q.Order(orderClause(f.Sort, f.Order, "title"))

	var books []domain.Book
	err := q.Offset(f.Skip).Limit(f.Limit).Find(&books).Error
	return books, err
}

func (r *BookRepo) Update(ctx context.Context, b *domain.Book) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BookRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Book{}, "id = ?", id).Error
}

// orderClause 拼排序子句。sort 必须已通过 handler 层白名单校验，
// 这里只是兜底默认值，绝不拼接未校验的用户输入。
func orderClause(sort, order, def string) string {
	if sort == "" {
		sort = def
	}
	if order != "desc" {
		order = "asc"
	}
	return sort + " " + order
}
