package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"library-api/internal/domain"
	"library-api/internal/repo"
	"library-api/internal/service"
	"library-api/pkg/dbtime"
	"library-api/pkg/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // :memory: 只能单连接，避免拿到第二个空库
	require.NoError(t, db.AutoMigrate(&domain.User{}, &domain.Book{}, &domain.Member{}, &domain.Loan{}))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword("password123")
	require.NoError(t, err)
	u := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
		Role:         domain.RoleMember,
		FirstName:    "Test",
		LastName:     "User",
		CreatedAt:    dbtime.Today(),
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBook(t *testing.T, db *gorm.DB, isbn string, copies int) *domain.Book {
	t.Helper()
	b := &domain.Book{
		Title:           "Le Petit Prince",
		Author:          "Antoine de Saint-Exupéry",
		ISBN:            isbn,
		NumberOfCopies:  copies,
		AvailableCopies: copies,
	}
	require.NoError(t, db.Create(b).Error)
	return b
}

func seedMember(t *testing.T, db *gorm.DB, num string, userID uint) *domain.Member {
	t.Helper()
	m := &domain.Member{
		MembershipNumber: num,
		FirstName:        "Jean",
		LastName:         "Dupont",
		Email:            num + "@example.com",
		JoinDate:         dbtime.Today(),
		UserID:           userID,
	}
	require.NoError(t, db.Create(m).Error)
	return m
}

func newBookService(db *gorm.DB) *service.BookService {
	return service.NewBookService(repo.NewBookRepo(db), nil, 0, zap.NewNop())
}

func newMemberService(db *gorm.DB) *service.MemberService {
	return service.NewMemberService(repo.NewMemberRepo(db), repo.NewUserRepo(db), zap.NewNop())
}

func newLoanService(db *gorm.DB) *service.LoanService {
	return service.NewLoanService(repo.NewLoanRepo(db), repo.NewBookRepo(db), repo.NewMemberRepo(db), zap.NewNop())
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	var de *domain.Error
	require.ErrorAs(t, err, &de)
	return de.Status
}

var ctx = context.Background()
