package service

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/domain"
)

type stubUserRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*domain.User
	lookErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[uuid.UUID]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Nickname == user.Nickname {
			return domain.ErrUserExists
		}
	}
	r.byID[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) GetByNickname(_ context.Context, nickname string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.lookErr != nil {
		return nil, r.lookErr
	}
	for _, u := range r.byID {
		if u.Nickname == nickname {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, page, size uint32) ([]*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) UpdateSuspended(_ context.Context, id uuid.UUID, suspended bool) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	u.Suspended = suspended
	return cloneUser(u), nil
}

type stubAuthorRepo struct {
	byID map[uuid.UUID]*domain.Author
	err  error
}

func newStubAuthorRepo(authors ...*domain.Author) *stubAuthorRepo {
	r := &stubAuthorRepo{byID: make(map[uuid.UUID]*domain.Author)}
	for _, a := range authors {
		r.byID[a.ID] = a
	}
	return r
}

func (r *stubAuthorRepo) Create(_ context.Context, author *domain.Author) error {
	if r.err != nil {
		return r.err
	}
	r.byID[author.ID] = author
	return nil
}

func (r *stubAuthorRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAuthorNotFound
	}
	return a, nil
}

func (r *stubAuthorRepo) List(_ context.Context, page, size uint32) ([]*domain.Author, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Author, 0, len(r.byID))
	for _, a := range r.byID {
		out = append(out, a)
	}
	return out, nil
}

func (r *stubAuthorRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

type stubBookRepo struct {
	byID map[uuid.UUID]*domain.Book
	err  error
}

func newStubBookRepo(books ...*domain.Book) *stubBookRepo {
	r := &stubBookRepo{byID: make(map[uuid.UUID]*domain.Book)}
	for _, b := range books {
		r.byID[b.ID] = b
	}
	return r
}

func (r *stubBookRepo) Create(_ context.Context, book *domain.Book) error {
	if r.err != nil {
		return r.err
	}
	r.byID[book.ID] = book
	return nil
}

func (r *stubBookRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Book, error) {
	b, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrBookNotFound
	}
	return b, nil
}

func (r *stubBookRepo) ListByAuthor(_ context.Context, authorID uuid.UUID) ([]*domain.Book, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Book, 0)
	for _, b := range r.byID {
		if b.AuthorID != nil && *b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubBookRepo) List(_ context.Context, page, size uint32) ([]*domain.Book, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]*domain.Book, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

func (r *stubBookRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.byID, id)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
