package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/clipstream/backend/internal/repository"
	"github.com/clipstream/backend/pkg/password"
)

func newAuthService(t *testing.T) (pgxmock.PgxPoolIface, *AuthService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	users := repository.NewUserRepo(mock)
	return mock, NewAuthService(users, "test-secret", time.Hour, bcrypt.MinCost)
}

func TestAuthService_Register_IssuesValidToken(t *testing.T) {
	mock, svc := newAuthService(t)

	mock.ExpectExec("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "alice", "alice@example.com", pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	resp, err := svc.Register(context.Background(), "alice", "alice@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "alice", resp.User.Username)
	require.NotEmpty(t, resp.User.ID)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	require.NoError(t, err)

	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, resp.User.ID, sub)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	_, svc := newAuthService(t)

	resp, err := svc.Register(context.Background(), "alice", "alice@example.com", "short")
	require.Nil(t, resp)
	require.ErrorIs(t, err, password.ErrTooShort)
}

func TestAuthService_Login_UnknownIdentifier(t *testing.T) {
	mock, svc := newAuthService(t)

	mock.ExpectQuery("SELECT id, username, email").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	resp, err := svc.Login(context.Background(), "ghost", "correct horse")
	require.Nil(t, resp)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mock, svc := newAuthService(t)

	hash, err := password.Hash("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, email").
		WithArgs("alice").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow("u1", "alice", "alice@example.com", hash, now, now))

	resp, err := svc.Login(context.Background(), "alice", "battery staple")
	require.Nil(t, resp)
	require.ErrorIs(t, err, ErrInvalidCredentials)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthService_Login_Success(t *testing.T) {
	mock, svc := newAuthService(t)

	hash, err := password.Hash("correct horse", bcrypt.MinCost)
	require.NoError(t, err)

	now := time.Now()
	mock.ExpectQuery("SELECT id, username, email").
		WithArgs("alice@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username", "email", "password_hash", "created_at", "updated_at"}).
			AddRow("u1", "alice", "alice@example.com", hash, now, now))

	resp, err := svc.Login(context.Background(), "alice@example.com", "correct horse")
	require.NoError(t, err)
	require.Equal(t, "u1", resp.User.ID)
	require.NotEmpty(t, resp.Token)
	require.NoError(t, mock.ExpectationsWereMet())
}
