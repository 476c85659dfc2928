package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"library-api/internal/domain"
)

type MemberRepo struct{ db *gorm.DB }

func NewMemberRepo(db *gorm.DB) *MemberRepo { return &MemberRepo{db: db} }

func (r *MemberRepo) Create(ctx context.Context, m *domain.Member) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *MemberRepo) FindByID(ctx context.Context, id uint) (*domain.Member, error) {
	var m domain.Member
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &m, err
}

func (r *MemberRepo) FindByMembershipNumber(ctx context.Context, num string) (*domain.Member, error) {
	var m domain.Member
	err := r.db.WithContext(ctx).First(&m, "membership_number = ?", num).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &m, err
}

func (r *MemberRepo) FindByEmail(ctx context.Context, email string) (*domain.Member, error) {
	var m domain.Member
	err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &m, err
}

func (r *MemberRepo) List(ctx context.Context, f domain.MemberFilter) ([]domain.Member, error) {
	q := r.db.WithContext(ctx).Model(&domain.Member{})
	if s := strings.TrimSpace(f.FirstName); s != "" {
		q = q.Where("LOWER(first_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.LastName); s != "" {
		q = q.Where("LOWER(last_name) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if s := strings.TrimSpace(f.Email); s != "" {
		q = q.Where("LOWER(email) LIKE ?", "%"+strings.ToLower(s)+"%")
	}
	if f.Sort == "" {
		// 默认按「姓, 名」排序
		q = q.Order("last_name asc").Order("first_name asc")
	} else {
		q = q.Order(orderClause(f.Sort, f.Order, "last_name"))
	}

	var members []domain.Member
	err := q.Offset(f.Skip).Limit(f.Limit).Find(&members).Error
	return members, err
}

func (r *MemberRepo) Update(ctx context.Context, m *domain.Member) error {
	return r.db.WithContext(ctx).Save(m).Error
}

func (r *MemberRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Member{}, "id = ?", id).Error
}
