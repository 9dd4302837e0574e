package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/bookstore/internal/domain"
)

// UserRepository defines persistence access for accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByNickname(ctx context.Context, nickname string) (*domain.User, error)
	List(ctx context.Context, page, size uint32) ([]*domain.User, error)
	UpdateSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

const userColumns = `id, first_name, last_name, middle_name, nickname, hashed_password, date_registered, role::text, suspended`

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (id, first_name, last_name, middle_name, nickname, hashed_password, date_registered, role, suspended)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8::user_role, $9)`

	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.MiddleName,
		user.Nickname,
		user.PasswordHash,
		user.DateRegistered,
		user.Role.StorageValue(),
		user.Suspended,
	)
	if isUniqueViolation(err) {
		return domain.ErrUserExists
	}
	return err
}

func (r *userRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) GetByNickname(ctx context.Context, nickname string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE nickname=$1`
	return scanUser(r.pool.QueryRow(ctx, query, nickname))
}

func (r *userRepository) List(ctx context.Context, page, size uint32) ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY date_registered, id OFFSET $1 LIMIT $2`

	rows, err := r.pool.Query(ctx, query, offset(page, size), int64(size))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]*domain.User, 0, size)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (r *userRepository) UpdateSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*domain.User, error) {
	query := `UPDATE users SET suspended=$1 WHERE id=$2 RETURNING ` + userColumns
	return scanUser(r.pool.QueryRow(ctx, query, suspended, id))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	if err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.MiddleName,
		&user.Nickname,
		&user.PasswordHash,
		&user.DateRegistered,
		&role,
		&user.Suspended,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	parsed, err := domain.ParseRole(role)
	if err != nil {
		return nil, fmt.Errorf("user %s: %w", user.ID, err)
	}
	user.Role = parsed
	return &user, nil
}
