package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"library-api/internal/core/cache"
	"library-api/internal/domain"
	"library-api/pkg/dbtime"
)

type BookCreateInput struct {
	Title           string
	Author          string
	ISBN            string
	Publisher       string
	PublicationDate *dbtime.Date
	NumberOfCopies  int
}

// BookPatch 显式列出允许修改的字段，非 nil 才覆盖
type BookPatch struct {
	Title           *string
	Author          *string
	ISBN            *string
	Publisher       *string
	PublicationDate *dbtime.Date
	NumberOfCopies  *int
	AvailableCopies *int
}

type BookService struct {
	books domain.BookRepository
	cache *cache.Cache // 可为 nil（未配置 redis 时直连 DB）
	ttl   time.Duration
	log   *zap.Logger
}

func NewBookService(books domain.BookRepository, c *cache.Cache, ttl time.Duration, log *zap.Logger) *BookService {
	return &BookService{books: books, cache: c, ttl: ttl, log: log}
}

func bookCacheKey(id uint) string { return fmt.Sprintf("book:%d", id) }

// Create 新书上架：available_copies 一律等于 number_of_copies，不信客户端
func (s *BookService) Create(ctx context.Context, in BookCreateInput) (*domain.Book, error) {
	if b, err := s.books.FindByISBN(ctx, in.ISBN); err != nil {
		return nil, err
	} else if b != nil {
		return nil, domain.Conflict("ISBN already exists")
	}
	b := &domain.Book{
		Title:           in.Title,
		Author:          in.Author,
		ISBN:            in.ISBN,
		Publisher:       in.Publisher,
		PublicationDate: in.PublicationDate,
		NumberOfCopies:  in.NumberOfCopies,
		AvailableCopies: in.NumberOfCopies,
	}
	if err := s.books.Create(ctx, b); err != nil {
		return nil, err
	}
	s.log.Info("book created", zap.Uint("id", b.ID), zap.String("title", b.Title))
	return b, nil
}

func (s *BookService) List(ctx context.Context, f domain.BookFilter) ([]domain.Book, error) {
	return s.books.List(ctx, f)
}

// Get 配了 redis 就走读穿缓存（singleflight 合并并发回源）
func (s *BookService) Get(ctx context.Context, id uint) (*domain.Book, error) {
	var (
		b   *domain.Book
		err error
	)
	if s.cache != nil {
		b, err = cache.GetOrLoadJSON[domain.Book](s.cache, ctx, bookCacheKey(id), s.ttl,
			func(ctx context.Context) (*domain.Book, error) {
				return s.books.FindByID(ctx, id)
			})
	} else {
		b, err = s.books.FindByID(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound("Book not found")
	}
	return b, nil
}

func (s *BookService) Update(ctx context.Context, id uint, p BookPatch) (*domain.Book, error) {
	b, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, domain.NotFound("Book not found")
	}

	// ISBN 换新值时和其他行做唯一性复查
	if p.ISBN != nil && *p.ISBN != b.ISBN {
		if other, err := s.books.FindByISBN(ctx, *p.ISBN); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, domain.Conflict("ISBN already exists")
		}
		b.ISBN = *p.ISBN
	}
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Author != nil {
		b.Author = *p.Author
	}
	if p.Publisher != nil {
		b.Publisher = *p.Publisher
	}
	if p.PublicationDate != nil {
		b.PublicationDate = p.PublicationDate
	}
	if p.NumberOfCopies != nil {
		b.NumberOfCopies = *p.NumberOfCopies
	}
	if p.AvailableCopies != nil {
		b.AvailableCopies = *p.AvailableCopies
	}
	// 不变式：可借数不能超过总数（服务端强制，不信客户端）
	if b.AvailableCopies > b.NumberOfCopies {
		return nil, domain.BadRequest("available_copies cannot exceed number_of_copies")
	}
	if b.AvailableCopies < 0 {
		return nil, domain.BadRequest("available_copies cannot be negative")
	}

	if err := s.books.Update(ctx, b); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	s.log.Info("book updated", zap.Uint("id", b.ID), zap.String("title", b.Title))
	return b, nil
}

func (s *BookService) Delete(ctx context.Context, id uint) error {
	b, err := s.books.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return domain.NotFound("Book not found")
	}
	if err := s.books.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.log.Info("book deleted", zap.Uint("id", id), zap.String("title", b.Title))
	return nil
}

func (s *BookService) invalidate(ctx context.Context, id uint) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, bookCacheKey(id))
	}
}
