package service_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-api/internal/domain"
	"library-api/internal/service"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func Test_BookCreate_AvailableEqualsTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newBookService(db)

	b, err := svc.Create(ctx, service.BookCreateInput{
		Title: "Germinal", Author: "Émile Zola", ISBN: "1234567890", NumberOfCopies: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, b.NumberOfCopies)
	assert.Equal(t, 3, b.AvailableCopies)
}

func Test_BookCreate_DuplicateISBN(t *testing.T) {
	db := newTestDB(t)
	svc := newBookService(db)

	_, err := svc.Create(ctx, service.BookCreateInput{
		Title: "Germinal", Author: "Émile Zola", ISBN: "1234567890", NumberOfCopies: 1,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, service.BookCreateInput{
		Title: "Autre", Author: "Autre", ISBN: "1234567890", NumberOfCopies: 1,
	})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func Test_BookUpdate_Partial(t *testing.T) {
	db := newTestDB(t)
	svc := newBookService(db)
	b := seedBook(t, db, "1234567890", 2)

	got, err := svc.Update(ctx, b.ID, service.BookPatch{Title: strPtr("Nouveau titre")})
	require.NoError(t, err)
	assert.Equal(t, "Nouveau titre", got.Title)
	// 未提供的字段保持原值
	assert.Equal(t, b.Author, got.Author)
	assert.Equal(t, b.ISBN, got.ISBN)
	assert.Equal(t, 2, got.AvailableCopies)
}

func Test_BookUpdate_ISBNConflictWithOtherRow(t *testing.T) {
	db := newTestDB(t)
	svc := newBookService(db)
	seedBook(t, db, "1111111111", 1)
	b := seedBook(t, db, "2222222222", 1)

	_, err := svc.Update(ctx, b.ID, service.BookPatch{ISBN: strPtr("1111111111")})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	// 改成自己现有的 ISBN 不算冲突
	_, err = svc.Update(ctx, b.ID, service.BookPatch{ISBN: strPtr("2222222222")})
	assert.NoError(t, err)
}

func Test_BookUpdate_AvailableNeverExceedsTotal(t *testing.T) {
	db := newTestDB(t)
	svc := newBookService(db)
	b := seedBook(t, db, "1234567890", 2)

	_, err := svc.Update(ctx, b.ID, service.BookPatch{AvailableCopies: intPtr(5)})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	// 同时缩小总数也要重新检查
	_, err = svc.Update(ctx, b.ID, service.BookPatch{NumberOfCopies: intPtr(1), AvailableCopies: intPtr(2)})
	assert.Equal(t, http.StatusBadRequest, statusOf(t, err))

	got, err := svc.Update(ctx, b.ID, service.BookPatch{NumberOfCopies: intPtr(5), AvailableCopies: intPtr(4)})
	require.NoError(t, err)
	assert.Equal(t, 4, got.AvailableCopies)
}

func Test_BookGetDelete_NotFound(t *testing.T) {
	db := newTestDB(t)
	svc := newBookService(db)

	_, err := svc.Get(ctx, 999)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	err = svc.Delete(ctx, 999)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))

	b := seedBook(t, db, "1234567890", 1)
	require.NoError(t, svc.Delete(ctx, b.ID))
	_, err = svc.Get(ctx, b.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(t, err))
}

func Test_BookList_FilterAndSort(t *testing.T) {
	db := newTestDB(t)
	svc := newBookService(db)
	require.NoError(t, db.Create(&domain.Book{Title: "Zadig", Author: "Voltaire", ISBN: "1111111111", NumberOfCopies: 1, AvailableCopies: 1}).Error)
	require.NoError(t, db.Create(&domain.Book{Title: "Candide", Author: "Voltaire", ISBN: "2222222222", NumberOfCopies: 1, AvailableCopies: 1}).Error)
	require.NoError(t, db.Create(&domain.Book{Title: "Germinal", Author: "Zola", ISBN: "3333333333", NumberOfCopies: 1, AvailableCopies: 1}).Error)

	// 作者不区分大小写子串过滤
	books, err := svc.List(ctx, domain.BookFilter{Author: "volt", Limit: 10})
	require.NoError(t, err)
	require.Len(t, books, 2)

	// 默认按标题升序
	books, err = svc.List(ctx, domain.BookFilter{Limit: 10})
	require.NoError(t, err)
	require.Len(t, books, 3)
	assert.Equal(t, "Candide", books[0].Title)

	// 降序 + 分页
	books, err = svc.List(ctx, domain.BookFilter{Sort: "title", Order: "desc", Skip: 1, Limit: 1})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Germinal", books[0].Title)

	// ISBN 精确匹配
	books, err = svc.List(ctx, domain.BookFilter{ISBN: "2222222222", Limit: 10})
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "Candide", books[0].Title)
}
