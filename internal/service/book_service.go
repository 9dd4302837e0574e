package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
)

// BookWithAuthor is a book joined with its author, if it has one.
type BookWithAuthor struct {
	Book   *domain.Book
	Author *domain.Author
}

// NewBookInput is the data needed to add a book.
type NewBookInput struct {
	Title    string
	AuthorID *uuid.UUID
}

// BookService manages the catalogue.
type BookService struct {
	books   repository.BookRepository
	authors repository.AuthorRepository
}

// NewBookService builds the service.
func NewBookService(books repository.BookRepository, authors repository.AuthorRepository) *BookService {
	return &BookService{books: books, authors: authors}
}

func (s *BookService) GetByID(ctx context.Context, id uuid.UUID) (*BookWithAuthor, error) {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withAuthor(ctx, book)
}

func (s *BookService) List(ctx context.Context, page, size uint32) ([]*BookWithAuthor, error) {
	books, err := s.books.List(ctx, page, size)
	if err != nil {
		return nil, err
	}

	out := make([]*BookWithAuthor, 0, len(books))
	for _, book := range books {
		entry, err := s.withAuthor(ctx, book)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

// Create adds a book. A referenced author must exist.
func (s *BookService) Create(ctx context.Context, in NewBookInput) (*domain.Book, error) {
	if in.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.AuthorID != nil {
		if _, err := s.authors.GetByID(ctx, *in.AuthorID); err != nil {
			return nil, err
		}
	}

	book := &domain.Book{ID: uuid.New(), Title: in.Title, AuthorID: in.AuthorID}
	if err := s.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.books.Delete(ctx, id)
}

func (s *BookService) withAuthor(ctx context.Context, book *domain.Book) (*BookWithAuthor, error) {
	entry := &BookWithAuthor{Book: book}
	if book.AuthorID == nil {
		return entry, nil
	}

	author, err := s.authors.GetByID(ctx, *book.AuthorID)
	switch {
	case errors.Is(err, domain.ErrAuthorNotFound):
		return entry, nil
	case err != nil:
		return nil, err
	}
	entry.Author = author
	return entry, nil
}
