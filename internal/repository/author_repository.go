package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore/internal/domain"
)

// AuthorRepository defines persistence access for authors.
type AuthorRepository interface {
	Create(ctx context.Context, author *domain.Author) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error)
	List(ctx context.Context, page, size uint32) ([]*domain.Author, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type authorRepository struct {
	pool *pgxpool.Pool
}

// NewAuthorRepository returns a Postgres-backed implementation.
func NewAuthorRepository(pool *pgxpool.Pool) AuthorRepository {
	return &authorRepository{pool: pool}
}

func (r *authorRepository) Create(ctx context.Context, author *domain.Author) error {
	const query = `
        INSERT INTO authors (id, first_name, last_name, middle_name)
        VALUES ($1, $2, $3, $4)`

	_, err := r.pool.Exec(ctx, query, author.ID, author.FirstName, author.LastName, author.MiddleName)
	return err
}

func (r *authorRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Author, error) {
	const query = `SELECT id, first_name, last_name, middle_name FROM authors WHERE id=$1`

	var author domain.Author
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&author.ID,
		&author.FirstName,
		&author.LastName,
		&author.MiddleName,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAuthorNotFound
		}
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) List(ctx context.Context, page, size uint32) ([]*domain.Author, error) {
	const query = `
        SELECT id, first_name, last_name, middle_name
        FROM authors ORDER BY last_name, first_name, id OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset(page, size), int64(size))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := make([]*domain.Author, 0, size)
	for rows.Next() {
		var author domain.Author
		if err := rows.Scan(&author.ID, &author.FirstName, &author.LastName, &author.MiddleName); err != nil {
			return nil, err
		}
		authors = append(authors, &author)
	}
	return authors, rows.Err()
}

func (r *authorRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id=$1`, id)
	return err
}
