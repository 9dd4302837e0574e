package handlers

import (
	"context"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/api/dto"
	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/service"
)

// AuthorService is what the author endpoints need from the service layer.
type AuthorService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*service.AuthorWithBooks, error)
	List(ctx context.Context, page, size uint32) ([]*service.AuthorWithBooks, error)
	Create(ctx context.Context, in service.NewAuthorInput) (*domain.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AuthorsHandler exposes authors and their bibliographies.
type AuthorsHandler struct {
	authors  AuthorService
	validate *Validator
}

func NewAuthorsHandler(authors AuthorService, validate *Validator) *AuthorsHandler {
	return &AuthorsHandler{authors: authors, validate: validate}
}

// List handles GET /api/author.
func (h *AuthorsHandler) List(c *fiber.Ctx) error {
	q, err := pageQuery(c, h.validate)
	if err != nil {
		return err
	}

	authors, err := h.authors.List(c.UserContext(), q.Page, q.Size)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(data(dto.NewAuthorListResponse(authors)))
}

// Get handles GET /api/author/:id.
func (h *AuthorsHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	author, err := h.authors.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(data(dto.NewAuthorResponse(author)))
}

// Create handles POST /api/author.
func (h *AuthorsHandler) Create(c *fiber.Ctx) error {
	var req dto.AddAuthorRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	author, err := h.authors.Create(c.UserContext(), service.NewAuthorInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		MiddleName: req.MiddleName,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.Status(http.StatusCreated).JSON(data(dto.NewAuthorSummary(author)))
}

// Delete handles DELETE /api/author/:id.
func (h *AuthorsHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.authors.Delete(c.UserContext(), id); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(http.StatusOK)
}
