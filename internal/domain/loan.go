package domain

import (
	"context"

	"library-api/pkg/dbtime"
)

const (
	LoanStatusActive   = "En cours"
	LoanStatusReturned = "Retourné"
	LoanStatusOverdue  = "En retard"
)

// Loan 借阅记录。独立主键：同一本书可以被反复借出，历史全部保留。
// return_date 为空 ⇔ status = "En cours"，归还时一次性写入。
type Loan struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	BookID     uint         `gorm:"index;not null" json:"book_id"`
	MemberID   uint         `gorm:"index;not null" json:"member_id"`
	LoanDate   dbtime.Date  `gorm:"not null" json:"loan_date"`
	DueDate    dbtime.Date  `gorm:"index;not null" json:"due_date"`
	ReturnDate *dbtime.Date `json:"return_date"`
	Status     string       `gorm:"size:16;not null;default:'En cours'" json:"status"`
}

func (Loan) TableName() string { return "loans" }

// LoanDetails 带书籍和会员快照的借阅视图
type LoanDetails struct {
	ID         uint         `json:"id"`
	Book       Book         `json:"book"`
	Member     Member       `json:"member"`
	LoanDate   dbtime.Date  `json:"loan_date"`
	DueDate    dbtime.Date  `json:"due_date"`
	ReturnDate *dbtime.Date `json:"return_date"`
	Status     string       `json:"status"`
}

type LoanFilter struct {
	Status string
	Skip   int
	Limit  int
}

type LoanRepository interface {
	// Checkout 在一个事务里完成条件扣减 available_copies + 插入借阅行。
	// 库存不足时返回 BadRequest，保证并发借最后一本时不会超卖。
	Checkout(ctx context.Context, loan *Loan) error
	FindByID(ctx context.Context, id uint) (*Loan, error)
	List(ctx context.Context, f LoanFilter) ([]Loan, error)
	// Return 在一个事务里写入归还日期并回补库存（不会超过 number_of_copies）
	Return(ctx context.Context, id uint, when dbtime.Date) (*Loan, error)
	ListOverdue(ctx context.Context, today dbtime.Date) ([]Loan, error)
}
