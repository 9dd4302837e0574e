package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
)

// UserService exposes account queries and administration.
type UserService struct {
	users      repository.UserRepository
	bcryptCost int
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, bcryptCost int) *UserService {
	return &UserService{users: users, bcryptCost: bcryptCost}
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, page, size uint32) ([]*domain.User, error) {
	return s.users.List(ctx, page, size)
}

// UpdateSuspended sets the suspension flag. It takes effect on the account's next request.
func (s *UserService) UpdateSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*domain.User, error) {
	return s.users.UpdateSuspended(ctx, id, suspended)
}

// EnsureAdmin creates the administrator account unless the nickname is taken.
// It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, nickname, password string) (bool, error) {
	if !ValidNickname(nickname) || password == "" {
		return false, domain.ErrInvalidInput
	}

	if _, err := s.users.GetByNickname(ctx, nickname); err == nil {
		return false, nil
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return false, err
	}

	admin := &domain.User{
		ID:             uuid.New(),
		FirstName:      "Admin",
		LastName:       "Admin",
		Nickname:       nickname,
		PasswordHash:   hash,
		DateRegistered: time.Now().UTC(),
		Role:           domain.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
