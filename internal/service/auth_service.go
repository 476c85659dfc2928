package service

import (
	"context"

	"go.uber.org/zap"

	"library-api/internal/core/auth"
	"library-api/internal/domain"
	"library-api/pkg/dbtime"
	"library-api/pkg/utils"
)

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
	log   *zap.Logger
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer, log *zap.Logger) *AuthService {
	return &AuthService{users: users, jwter: jwter, log: log}
}

// Register 用户名/邮箱都必须唯一，角色固定落为 member
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if u, err := s.users.FindByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if u != nil {
		return nil, domain.Conflict("Username already taken")
	}
	if u, err := s.users.FindByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if u != nil {
		return nil, domain.Conflict("Email already registered")
	}

	hash, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleMember,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    dbtime.Today(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("username", u.Username), zap.Uint("id", u.ID))
	return u, nil
}

// Login 校验凭证、签发 token、记录 last_login。
// 用户不存在和密码错误返回同一个 401，不泄露账号是否存在。
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil || !utils.CheckPassword(password, u.PasswordHash) {
		return "", domain.Unauthorized("Invalid credentials")
	}
	token, err := s.jwter.Issue(u.Username, u.Role)
	if err != nil {
		return "", err
	}
	if err := s.users.RecordLogin(ctx, u.ID, dbtime.Today()); err != nil {
		return "", err
	}
	s.log.Info("user logged in", zap.String("username", u.Username))
	return token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.Unauthorized("User not found")
	}
	return u, nil
}
