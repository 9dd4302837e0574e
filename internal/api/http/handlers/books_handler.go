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

// BookService is what the catalogue endpoints need from the service layer.
type BookService interface {
	GetByID(ctx context.Context, id uuid.UUID) (*service.BookWithAuthor, error)
	List(ctx context.Context, page, size uint32) ([]*service.BookWithAuthor, error)
	Create(ctx context.Context, in service.NewBookInput) (*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BooksHandler exposes the catalogue.
type BooksHandler struct {
	books    BookService
	validate *Validator
}

func NewBooksHandler(books BookService, validate *Validator) *BooksHandler {
	return &BooksHandler{books: books, validate: validate}
}

// List handles GET /api/book.
func (h *BooksHandler) List(c *fiber.Ctx) error {
	q, err := pageQuery(c, h.validate)
	if err != nil {
		return err
	}

	books, err := h.books.List(c.UserContext(), q.Page, q.Size)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(data(dto.NewBookListResponse(books)))
}

// Get handles GET /api/book/:id.
func (h *BooksHandler) Get(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	book, err := h.books.GetByID(c.UserContext(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(data(dto.NewBookResponse(book)))
}

// Create handles POST /api/book.
func (h *BooksHandler) Create(c *fiber.Ctx) error {
	var req dto.AddBookRequest
	if err := bindBody(c, h.validate, &req); err != nil {
		return err
	}

	book, err := h.books.Create(c.UserContext(), service.NewBookInput{Title: req.Title, AuthorID: req.AuthorID})
	if err != nil {
		return serviceError(err)
	}
	return c.Status(http.StatusCreated).JSON(data(dto.NewBookSummary(book)))
}

// Delete handles DELETE /api/book/:id.
func (h *BooksHandler) Delete(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.books.Delete(c.UserContext(), id); err != nil {
		return serviceError(err)
	}
	return c.SendStatus(http.StatusOK)
}
