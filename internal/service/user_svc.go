package service

import (
	"context"

	"github.com/clipstream/backend/internal/model"
	"github.com/clipstream/backend/internal/repository"
)

type UserService struct {
	users *repository.UserRepo
}

func NewUserService(users *repository.UserRepo) *UserService {
	return &UserService{users: users}
}

// Get returns the public profile for a user.
func (s *UserService) Get(ctx context.Context, userID string) (*model.UserResponse, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &model.UserResponse{ID: u.ID, Username: u.Username}, nil
}

// GetStats returns aggregate platform statistics.
func (s *UserService) GetStats(ctx context.Context) (*model.StatsResponse, error) {
	return s.users.GetStats(ctx)
}
