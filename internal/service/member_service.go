package service

import (
	"context"

	"go.uber.org/zap"

	"library-api/internal/domain"
	"library-api/pkg/dbtime"
)

type MemberCreateInput struct {
	MembershipNumber string
	FirstName        string
	LastName         string
	Email            string
	PhoneNumber      string
	Address          string
	JoinDate         *dbtime.Date
	UserID           uint
}

type MemberPatch struct {
	MembershipNumber *string
	FirstName        *string
	LastName         *string
	Email            *string
	PhoneNumber      *string
	Address          *string
	JoinDate         *dbtime.Date
	UserID           *uint
}

type MemberService struct {
	members domain.MemberRepository
	users   domain.UserRepository
	log     *zap.Logger
}

func NewMemberService(members domain.MemberRepository, users domain.UserRepository, log *zap.Logger) *MemberService {
	return &MemberService{members: members, users: users, log: log}
}

func (s *MemberService) Create(ctx context.Context, in MemberCreateInput) (*domain.Member, error) {
	if m, err := s.members.FindByMembershipNumber(ctx, in.MembershipNumber); err != nil {
		return nil, err
	} else if m != nil {
		return nil, domain.Conflict("Membership number already taken")
	}
	if m, err := s.members.FindByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if m != nil {
		return nil, domain.Conflict("Email already registered")
	}
	// 会员和用户一对一，user_id 必须指向真实用户
	if u, err := s.users.FindByID(ctx, in.UserID); err != nil {
		return nil, err
	} else if u == nil {
		return nil, domain.NotFound("User not found")
	}

	join := dbtime.Today()
	if in.JoinDate != nil {
		join = *in.JoinDate
	}
	m := &domain.Member{
		MembershipNumber: in.MembershipNumber,
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		Email:            in.Email,
		PhoneNumber:      in.PhoneNumber,
		Address:          in.Address,
		JoinDate:         join,
		UserID:           in.UserID,
	}
	if err := s.members.Create(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info("member created", zap.Uint("id", m.ID), zap.String("membership_number", m.MembershipNumber))
	return m, nil
}

func (s *MemberService) List(ctx context.Context, f domain.MemberFilter) ([]domain.Member, error) {
	return s.members.List(ctx, f)
}

func (s *MemberService) Get(ctx context.Context, id uint) (*domain.Member, error) {
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("Member not found")
	}
	return m, nil
}

func (s *MemberService) Update(ctx context.Context, id uint, p MemberPatch) (*domain.Member, error) {
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, domain.NotFound("Member not found")
	}

	if p.Email != nil && *p.Email != m.Email {
		if other, err := s.members.FindByEmail(ctx, *p.Email); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, domain.Conflict("Email already registered")
		}
		m.Email = *p.Email
	}
	if p.MembershipNumber != nil && *p.MembershipNumber != m.MembershipNumber {
		if other, err := s.members.FindByMembershipNumber(ctx, *p.MembershipNumber); err != nil {
			return nil, err
		} else if other != nil && other.ID != id {
			return nil, domain.Conflict("Membership number already taken")
		}
		m.MembershipNumber = *p.MembershipNumber
	}
	if p.UserID != nil && *p.UserID != m.UserID {
		if u, err := s.users.FindByID(ctx, *p.UserID); err != nil {
			return nil, err
		} else if u == nil {
			return nil, domain.NotFound("User not found")
		}
		m.UserID = *p.UserID
	}
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.PhoneNumber != nil {
		m.PhoneNumber = *p.PhoneNumber
	}
	if p.Address != nil {
		m.Address = *p.Address
	}
	if p.JoinDate != nil {
		m.JoinDate = *p.JoinDate
	}

	if err := s.members.Update(ctx, m); err != nil {
		return nil, err
	}
	s.log.Info("member updated", zap.Uint("id", m.ID))
	return m, nil
}

func (s *MemberService) Delete(ctx context.Context, id uint) error {
	m, err := s.members.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if m == nil {
		return domain.NotFound("Member not found")
	}
	if err := s.members.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info("member deleted", zap.Uint("id", id))
	return nil
}
