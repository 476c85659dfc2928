package service

import (
	"context"

	"go.uber.org/zap"

	"library-api/internal/domain"
	"library-api/pkg/dbtime"
)

// DefaultLoanDays 未指定 due_date 时的默认借期
const DefaultLoanDays = 14

type CheckoutInput struct {
	BookID   uint
	MemberID uint
	LoanDate *dbtime.Date
	DueDate  *dbtime.Date
}

type LoanService struct {
	loans   domain.LoanRepository
	books   domain.BookRepository
	members domain.MemberRepository
	log     *zap.Logger
}

func NewLoanService(loans domain.LoanRepository, books domain.BookRepository, members domain.MemberRepository, log *zap.Logger) *LoanService {
	return &LoanService{loans: loans, books: books, members: members, log: log}
}

// Checkout 借书。检查顺序：书存在 → 有库存 → 会员存在，然后事务落库。
// 预检查只为给出准确的错误码；真正的防超卖靠仓储层的条件 UPDATE。
func (s *LoanService) Checkout(ctx context.Context, in CheckoutInput) (*domain.LoanDetails, error) {
	book, err := s.books.FindByID(ctx, in.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, domain.NotFound("Book not found")
	}
	if book.AvailableCopies <= 0 {
		return nil, domain.BadRequest("Book not available for loan")
	}
	member, err := s.members.FindByID(ctx, in.MemberID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, domain.NotFound("Member not found")
	}

	loanDate := dbtime.Today()
	if in.LoanDate != nil {
		loanDate = *in.LoanDate
	}
	dueDate := loanDate.AddDays(DefaultLoanDays)
	if in.DueDate != nil {
		dueDate = *in.DueDate
	}

	loan := &domain.Loan{
		BookID:   in.BookID,
		MemberID: in.MemberID,
		LoanDate: loanDate,
		DueDate:  dueDate,
	}
	if err := s.loans.Checkout(ctx, loan); err != nil {
		return nil, err
	}
	s.log.Info("loan created",
		zap.Uint("loan_id", loan.ID),
		zap.Uint("book_id", in.BookID),
		zap.Uint("member_id", in.MemberID))
	return s.details(ctx, loan)
}

func (s *LoanService) List(ctx context.Context, f domain.LoanFilter) ([]domain.LoanDetails, error) {
	loans, err := s.loans.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return s.detailsAll(ctx, loans)
}

func (s *LoanService) Get(ctx context.Context, id uint) (*domain.LoanDetails, error) {
	loan, err := s.loans.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, domain.NotFound("Loan not found")
	}
	return s.details(ctx, loan)
}

// Return 归还。二次归还和丢失的行都由仓储层报出（400 / 404）。
func (s *LoanService) Return(ctx context.Context, id uint) (*domain.LoanDetails, error) {
	loan, err := s.loans.Return(ctx, id, dbtime.Today())
	if err != nil {
		return nil, err
	}
	s.log.Info("loan returned", zap.Uint("loan_id", loan.ID), zap.Uint("book_id", loan.BookID))
	return s.details(ctx, loan)
}

// Overdue 在借且 due_date 已过的记录
func (s *LoanService) Overdue(ctx context.Context) ([]domain.LoanDetails, error) {
	loans, err := s.loans.ListOverdue(ctx, dbtime.Today())
	if err != nil {
		return nil, err
	}
	return s.detailsAll(ctx, loans)
}

// details 查询时拼装书籍/会员快照；被删掉的一侧保留零值而不是整条丢弃
func (s *LoanService) details(ctx context.Context, loan *domain.Loan) (*domain.LoanDetails, error) {
	d := &domain.LoanDetails{
		ID:         loan.ID,
		LoanDate:   loan.LoanDate,
		DueDate:    loan.DueDate,
		ReturnDate: loan.ReturnDate,
		Status:     loan.Status,
	}
	if b, err := s.books.FindByID(ctx, loan.BookID); err != nil {
		return nil, err
	} else if b != nil {
		d.Book = *b
	}
	if m, err := s.members.FindByID(ctx, loan.MemberID); err != nil {
		return nil, err
	} else if m != nil {
		d.Member = *m
	}
	return d, nil
}

func (s *LoanService) detailsAll(ctx context.Context, loans []domain.Loan) ([]domain.LoanDetails, error) {
	out := make([]domain.LoanDetails, 0, len(loans))
	for i := range loans {
		d, err := s.details(ctx, &loans[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}
