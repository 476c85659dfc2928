package domain

import (
	"context"

	"library-api/pkg/dbtime"
)

type Member struct {
	ID               uint        `gorm:"primaryKey" json:"id"`
	MembershipNumber string      `gorm:"uniqueIndex;size:20;not null" json:"membership_number"`
	FirstName        string      `gorm:"size:50;not null" json:"first_name"`
	LastName         string      `gorm:"size:50;not null" json:"last_name"`
	Email            string      `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PhoneNumber      string      `gorm:"size:20" json:"phone_number"`
	Address          string      `gorm:"size:200" json:"address"`
	JoinDate         dbtime.Date `gorm:"not null" json:"join_date"`
	// 与 User 一对一，显式外键，不做 ORM 反向引用
	UserID uint `gorm:"uniqueIndex;not null" json:"user_id"`
}

func (Member) TableName() string { return "members" }

type MemberFilter struct {
	FirstName string
	LastName  string
	Email     string
	Sort      string
	Order     string
	Skip      int
	Limit     int
}

type MemberRepository interface {
	Create(ctx context.Context, m *Member) error
	FindByID(ctx context.Context, id uint) (*Member, error)
	FindByMembershipNumber(ctx context.Context, num string) (*Member, error)
	FindByEmail(ctx context.Context, email string) (*Member, error)
	List(ctx context.Context, f MemberFilter) ([]Member, error)
	Update(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id uint) error
}
