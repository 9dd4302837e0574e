package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/service"
)

// AuthService is what the auth endpoints need from the service layer.
type AuthService interface {
	Register(ctx context.Context, in service.RegisterInput) (*service.IssuedToken, error)
	Login(ctx context.Context, nickname, password string) (*service.IssuedToken, error)
}

// AuthHandler exposes registration and login.
type AuthHandler struct {
	auth     AuthService
	validate *Validator
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService AuthService, validate *Validator) *AuthHandler {
	return &AuthHandler{auth: authService, validate: validate}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	issued, err := h.auth.Register(c.UserContext(), service.RegisterInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
		Nickname:   req.Nickname,
		Password:   req.Password,
	})
	if err != nil {
		return serviceError(err)
	}

	return c.Status(http.StatusCreated).JSON(data(dto.TokenResponse{
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
	}))
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	issued, err := h.auth.Login(c.UserContext(), req.Nickname, req.Password)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(data(dto.TokenResponse{Token: issued.Token, ExpiresAt: issued.ExpiresAt}))
}
