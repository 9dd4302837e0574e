package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
)

// AuthorWithBooks is an author joined with everything they wrote.
type AuthorWithBooks struct {
	Author *domain.Author
	Books  []*domain.Book
}

// NewAuthorInput is the data needed to add an author.
type NewAuthorInput struct {
	FirstName  string
	LastName   string
	MiddleName *string
}

// AuthorService manages authors.
type AuthorService struct {
	authors repository.AuthorRepository
	books   repository.BookRepository
}

// NewAuthorService builds the service.
func NewAuthorService(authors repository.AuthorRepository, books repository.BookRepository) *AuthorService {
	return &AuthorService{authors: authors, books: books}
}

func (s *AuthorService) GetByID(ctx context.Context, id uuid.UUID) (*AuthorWithBooks, error) {
	author, err := s.authors.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withBooks(ctx, author)
}

func (s *AuthorService) List(ctx context.Context, page, size uint32) ([]*AuthorWithBooks, error) {
	authors, err := s.authors.List(ctx, page, size)
	if err != nil {
		return nil, err
	}

	out := make([]*AuthorWithBooks, 0, len(authors))
	for _, author := range authors {
		entry, err := s.withBooks(ctx, author)
		if err != nil {
			return nil, err
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *AuthorService) Create(ctx context.Context, in NewAuthorInput) (*domain.Author, error) {
	if in.FirstName == "" || in.LastName == "" {
		return nil, domain.ErrInvalidInput
	}

	author := &domain.Author{
		ID:         uuid.New(),
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		MiddleName: in.MiddleName,
	}
	if err := s.authors.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

// Delete removes the author; their books stay and lose the attribution.
func (s *AuthorService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.authors.Delete(ctx, id)
}

func (s *AuthorService) withBooks(ctx context.Context, author *domain.Author) (*AuthorWithBooks, error) {
	books, err := s.books.ListByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	return &AuthorWithBooks{Author: author, Books: books}, nil
}
