package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/domain"
)

// RegisterRequest payload for new accounts.
type RegisterRequest struct {
	FirstName  string  `json:"first_name" validate:"required,personname"`
	LastName   string  `json:"last_name" validate:"required,personname"`
	MiddleName *string `json:"middle_name" validate:"omitempty,personname"`
	Nickname   string  `json:"nickname" validate:"required,nickname"`
	Password   string  `json:"password" validate:"required"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Nickname string `json:"nickname" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateSuspendedRequest toggles an account's suspension.
type UpdateSuspendedRequest struct {
	Suspended *bool `json:"suspended" validate:"required"`
}

// TokenResponse standard response for auth endpoints.
type TokenResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserResponse is the public view of an account. The password hash never leaves the service.
type UserResponse struct {
	ID             uuid.UUID   `json:"id"`
	FirstName      string      `json:"first_name"`
	LastName       string      `json:"last_name"`
	MiddleName     *string     `json:"middle_name"`
	Nickname       string      `json:"nickname"`
	DateRegistered time.Time   `json:"date_registered"`
	Role           domain.Role `json:"role"`
	Suspended      bool        `json:"suspended"`
}

func NewUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		MiddleName:     u.MiddleName,
		Nickname:       u.Nickname,
		DateRegistered: u.DateRegistered,
		Role:           u.Role,
		Suspended:      u.Suspended,
	}
}

func NewUserListResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
