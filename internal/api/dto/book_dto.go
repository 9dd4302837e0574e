package dto

import (
	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/service"
)

// AddBookRequest payload for a new book.
type AddBookRequest struct {
	Title    string     `json:"title" validate:"required"`
	AuthorID *uuid.UUID `json:"author_id"`
}

// BookSummary is a book without its author.
type BookSummary struct {
	ID       uuid.UUID  `json:"id"`
	Title    string     `json:"title"`
	AuthorID *uuid.UUID `json:"author_id"`
}

// BookResponse is a book together with its author, when known.
type BookResponse struct {
	BookSummary
	Author *AuthorSummary `json:"author"`
}

func NewBookSummary(b *domain.Book) BookSummary {
	return BookSummary{ID: b.ID, Title: b.Title, AuthorID: b.AuthorID}
}

func NewBookResponse(entry *service.BookWithAuthor) BookResponse {
	resp := BookResponse{BookSummary: NewBookSummary(entry.Book)}
	if entry.Author != nil {
		author := NewAuthorSummary(entry.Author)
		resp.Author = &author
	}
	return resp
}

func NewBookListResponse(entries []*service.BookWithAuthor) []BookResponse {
	out := make([]BookResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, NewBookResponse(e))
	}
	return out
}
