package domain

import (
	"context"

	"library-api/pkg/dbtime"
)

const (
	RoleMember    = "member"
	RoleLibrarian = "librarian"
	RoleAdmin     = "admin"
)

type User struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Username     string       `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email        string       `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string       `gorm:"size:100;not null" json:"-"`
	Role         string       `gorm:"size:16;not null;default:member" json:"role"`
	FirstName    string       `gorm:"size:50;not null" json:"first_name"`
	LastName     string       `gorm:"size:50;not null" json:"last_name"`
	CreatedAt    dbtime.Date  `gorm:"not null" json:"created_at"`
	LastLogin    *dbtime.Date `json:"last_login"`
}

func (User) TableName() string { return "users" }

type UserRepository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	RecordLogin(ctx context.Context, id uint, when dbtime.Date) error
}
