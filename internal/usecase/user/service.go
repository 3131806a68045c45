// Package user provides use cases for listing users and fetching a user by
// username.
package user

import (
	"context"
	"fmt"

	"news-api/internal/domain/entity"
	"news-api/internal/repository"
)

// ErrUserNotFound indicates that the requested user was not found.
var ErrUserNotFound = fmt.Errorf("user not found: %w", entity.ErrNotFound)

// Service provides user lookup use cases.
type Service struct {
	Repo repository.UserRepository
}

// List retrieves all users. Only username, name and avatar URL are exposed.
func (s *Service) List(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Get retrieves a user by username.
// Returns ErrUserNotFound if the user does not exist.
func (s *Service) Get(ctx context.Context, username string) (*entity.User, error) {
	user, err := s.Repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}
