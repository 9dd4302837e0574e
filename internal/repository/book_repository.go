package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore/internal/domain"
)

// BookRepository defines persistence access for books.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Book, error)
	List(ctx context.Context, page, size uint32) ([]*domain.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bookRepository struct {
	pool *pgxpool.Pool
}

// NewBookRepository returns a Postgres-backed implementation.
func NewBookRepository(pool *pgxpool.Pool) BookRepository {
	return &bookRepository{pool: pool}
}

func (r *bookRepository) Create(ctx context.Context, book *domain.Book) error {
	const query = `INSERT INTO books (id, title, author_id) VALUES ($1, $2, $3)`

	_, err := r.pool.Exec(ctx, query, book.ID, book.Title, book.AuthorID)
	return err
}

func (r *bookRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Book, error) {
	const query = `SELECT id, title, author_id FROM books WHERE id=$1`

	var book domain.Book
	if err := r.pool.QueryRow(ctx, query, id).Scan(&book.ID, &book.Title, &book.AuthorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

func (r *bookRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]*domain.Book, error) {
	const query = `SELECT id, title, author_id FROM books WHERE author_id=$1 ORDER BY title, id`

	rows, err := r.pool.Query(ctx, query, authorID)
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *bookRepository) List(ctx context.Context, page, size uint32) ([]*domain.Book, error) {
	const query = `SELECT id, title, author_id FROM books ORDER BY title, id OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset(page, size), int64(size))
	if err != nil {
		return nil, err
	}
	return collectBooks(rows)
}

func (r *bookRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id=$1`, id)
	return err
}

func collectBooks(rows pgx.Rows) ([]*domain.Book, error) {
	defer rows.Close()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		var book domain.Book
		if err := rows.Scan(&book.ID, &book.Title, &book.AuthorID); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	return books, rows.Err()
}
