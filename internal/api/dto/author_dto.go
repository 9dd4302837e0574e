package dto

import (
	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/service"
)

// AddAuthorRequest payload for a new author.
type AddAuthorRequest struct {
	FirstName  string  `json:"first_name" validate:"required,personname"`
	LastName   string  `json:"last_name" validate:"required,personname"`
	MiddleName *string `json:"middle_name" validate:"omitempty,personname"`
}

// AuthorSummary is an author without their books.
type AuthorSummary struct {
	ID         uuid.UUID `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	MiddleName *string   `json:"middle_name"`
}

// AuthorResponse is an author with the books they wrote.
type AuthorResponse struct {
	AuthorSummary
	Books []BookSummary `json:"books"`
}

func NewAuthorSummary(a *domain.Author) AuthorSummary {
	return AuthorSummary{
		ID:         a.ID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		MiddleName: a.MiddleName,
	}
}

func NewAuthorResponse(entry *service.AuthorWithBooks) AuthorResponse {
	books := make([]BookSummary, 0, len(entry.Books))
	for _, b := range entry.Books {
		books = append(books, NewBookSummary(b))
	}
	return AuthorResponse{AuthorSummary: NewAuthorSummary(entry.Author), Books: books}
}

func NewAuthorListResponse(entries []*service.AuthorWithBooks) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewAuthorResponse(e))
	}
	return out
}
