package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/domain"
)

// UserService is what the account endpoints need from the service layer.
type UserService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, page, size uint32) ([]*domain.User, error)
	UpdateSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*domain.User, error)
}

// UsersHandler exposes account queries and suspension.
type UsersHandler struct {
	users    UserService
	validate *Validator
}

func NewUsersHandler(users UserService, validate *Validator) *UsersHandler {
	return &UsersHandler{users: users, validate: validate}
}

// List handles GET /api/user.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	q, err := pageQuery(c, h.validate)
	if err != nil {
		return err
	}

	users, err := h.users.List(c.UserContext(), q.Page, q.Size)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(data(dto.NewUserListResponse(users)))
}

// Get handles GET /api/user/:id.
func (h *UsersHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.users.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(data(dto.NewUserResponse(user)))
}

// UpdateSuspended handles PUT /api/user/:id/suspend.
func (h *UsersHandler) UpdateSuspended(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateSuspendedRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	user, err := h.users.UpdateSuspended(c.UserContext(), id, *req.Suspended)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(data(dto.NewUserResponse(user)))
}
