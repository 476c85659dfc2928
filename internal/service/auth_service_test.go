package service_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"library-api/internal/core/auth"
	"library-api/internal/domain"
	"library-api/internal/repo"
	"library-api/internal/service"
)

func authSvc(t *testing.T) (*service.AuthService, *auth.JWTer, *repo.UserRepo) {
	t.Helper()
	db := newTestDB(t)
	jwter := &auth.JWTer{Secret: []byte("test-secret"), Issuer: "library-api", TTL: time.Hour}
	users := repo.NewUserRepo(db)
	return service.NewAuthService(users, jwter, zap.NewNop()), jwter, users
}

func Test_Register_DefaultsToMember(t *testing.T) {
	svc, _, _ := authSvc(t)

	u, err := svc.Register(ctx, service.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "password123",
		FirstName: "Alice", LastName: "Martin",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleMember, u.Role)
	assert.Equal(t, "alice", u.Username)
	assert.NotEmpty(t, u.PasswordHash)
	assert.NotEqual(t, "password123", u.PasswordHash)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Nil(t, u.LastLogin)
}

func Test_Register_Conflicts(t *testing.T) {
	svc, _, _ := authSvc(t)

	_, err := svc.Register(ctx, service.RegisterInput{
		Username: "alice", Email: "alice@example.com", Password: "password123",
		FirstName: "Alice", LastName: "Martin",
	})
	require.NoError(t, err)

	// 同用户名
	_, err = svc.Register(ctx, service.RegisterInput{
		Username: "alice", Email: "other@example.com", Password: "password123",
		FirstName: "Alice", LastName: "Martin",
	})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))

	// 同邮箱
	_, err = svc.Register(ctx, service.RegisterInput{
		Username: "alice2", Email: "alice@example.com", Password: "password123",
		FirstName: "Alice", LastName: "Martin",
	})
	assert.Equal(t, http.StatusConflict, statusOf(t, err))
}

func Test_Login_IssuesTokenAndRecordsLogin(t *testing.T) {
	svc, jwter, users := authSvc(t)

	u, err := svc.Register(ctx, service.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "password123",
		FirstName: "Bob", LastName: "Durand",
	})
	require.NoError(t, err)

	tok, err := svc.Login(ctx, "bob", "password123")
	require.NoError(t, err)

	claims, err := jwter.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "bob", claims.Subject)
	assert.Equal(t, domain.RoleMember, claims.Role)

	stored, err := users.FindByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.LastLogin)
}

func Test_Login_InvalidCredentials(t *testing.T) {
	svc, _, _ := authSvc(t)

	_, err := svc.Register(ctx, service.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "password123",
		FirstName: "Bob", LastName: "Durand",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, "bob", "wrong-password")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	// 未知用户和密码错误不可区分
	_, err = svc.Login(ctx, "nobody", "password123")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func Test_CurrentUser(t *testing.T) {
	svc, _, _ := authSvc(t)

	_, err := svc.Register(ctx, service.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "password123",
		FirstName: "Carol", LastName: "Petit",
	})
	require.NoError(t, err)

	u, err := svc.CurrentUser(ctx, "carol")
	require.NoError(t, err)
	assert.Equal(t, "carol", u.Username)

	_, err = svc.CurrentUser(ctx, "ghost")
	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}
