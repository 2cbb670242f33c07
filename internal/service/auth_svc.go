package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/repository"
	"github.com/clipstream/backend/pkg/password"
)

// AuthService registers accounts, verifies credentials and issues
// bearer tokens. Credential hashing and token mechanics live here; the
// consistency engine never sees them.
type AuthService struct {
	users      *repository.UserRepo
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

func NewAuthService(users *repository.UserRepo, secret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	return &AuthService{
		users:      users,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account and returns a signed token for it.
// Duplicate username or email surfaces as repository.ErrConflict.
func (s *AuthService) Register(ctx context.Context, username, email, plaintext string) (*model.AuthResponse, error) {
	hash, err := password.Hash(plaintext, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := model.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.respond(user)
}

// Login verifies the identifier (email or username) and password.
// Unknown accounts and wrong passwords are indistinguishable to the
// caller: both return ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, identifier, plaintext string) (*model.AuthResponse, error) {
	user, err := s.users.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !password.Verify(user.PasswordHash, plaintext) {
		return nil, ErrInvalidCredentials
	}

	return s.respond(*user)
}

func (s *AuthService) respond(user model.User) (*model.AuthResponse, error) {
	token, err := s.issueToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &model.AuthResponse{
		Token: token,
		User:  model.UserResponse{ID: user.ID, Username: user.Username},
	}, nil
}

func (s *AuthService) issueToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
