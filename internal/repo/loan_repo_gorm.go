package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"library-api/internal/domain"
	"library-api/pkg/dbtime"
)

type LoanRepo struct{ db *gorm.DB }

func NewLoanRepo(db *gorm.DB) *LoanRepo { return &LoanRepo{db: db} }

// Checkout 条件扣减 + 插入借阅行，同一事务。
// UPDATE 自带 available_copies > 0 守卫：两个请求抢最后一本时，
// 只有先提交的扣减生效，后者 RowsAffected=0 直接失败，不会超卖。
func (r *LoanRepo) Checkout(ctx context.Context, loan *domain.Loan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Book{}).
			Where("id = ? AND available_copies > 0", loan.BookID).
			UpdateColumn("available_copies", gorm.Expr("available_copies - 1"))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.BadRequest("Book not available for loan")
		}
		loan.Status = domain.LoanStatusActive
		loan.ReturnDate = nil
		return tx.Create(loan).Error
	})
}

func (r *LoanRepo) FindByID(ctx context.Context, id uint) (*domain.Loan, error) {
	var l domain.Loan
	err := r.db.WithContext(ctx).First(&l, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &l, err
}

func (r *LoanRepo) List(ctx context.Context, f domain.LoanFilter) ([]domain.Loan, error) {
	q := r.db.WithContext(ctx).Model(&domain.Loan{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	var loans []domain.Loan
	err := q.Order("id asc").Offset(f.Skip).Limit(f.Limit).Find(&loans).Error
	return loans, err
}

// Return 归还：return_date IS NULL 守卫保证只写一次；
// 回补库存时用 available_copies < number_of_copies 守卫，杜绝越过总数。
func (r *LoanRepo) Return(ctx context.Context, id uint, when dbtime.Date) (*domain.Loan, error) {
	var loan domain.Loan
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&loan, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.NotFound("Loan not found")
			}
			return err
		}
		res := tx.Model(&domain.Loan{}).
			Where("id = ? AND return_date IS NULL", id).
			Updates(map[string]any{
				"return_date": when,
				"status":      domain.LoanStatusReturned,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.BadRequest("Book already returned")
		}
		if err := tx.Model(&domain.Book{}).
			Where("id = ? AND available_copies < number_of_copies", loan.BookID).
			UpdateColumn("available_copies", gorm.Expr("available_copies + 1")).Error; err != nil {
			return err
		}
		return tx.First(&loan, "id = ?", id).Error
	})
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *LoanRepo) ListOverdue(ctx context.Context, today dbtime.Date) ([]domain.Loan, error) {
	var loans []domain.Loan
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", domain.LoanStatusActive, today).
		Order("due_date asc").
		Find(&loans).Error
	return loans, err
}
