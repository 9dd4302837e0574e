package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/api/http/handlers"
	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/observability"
	"github.com/spec-kit/bookstore/internal/service"
)

type accountStore map[uuid.UUID]*domain.User

func (s accountStore) GetByID(_ context.Context, id uuid.UUID) (*domain.User, error) {
	u, ok := s[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s accountStore) List(context.Context, uint32, uint32) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(s))
	for _, u := range s {
		out = append(out, u)
	}
	return out, nil
}

func (s accountStore) UpdateSuspended(ctx context.Context, id uuid.UUID, suspended bool) (*domain.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	u.Suspended = suspended
	return u, nil
}

type noAuth struct{}

func (noAuth) Register(context.Context, service.RegisterInput) (*service.IssuedToken, error) {
	return nil, domain.ErrUserExists
}

func (noAuth) Login(context.Context, string, string) (*service.IssuedToken, error) {
	return nil, domain.ErrInvalidCredentials
}

type catalogue struct{}

func (catalogue) GetByID(_ context.Context, id uuid.UUID) (*service.BookWithAuthor, error) {
	return &service.BookWithAuthor{Book: &domain.Book{ID: id, Title: "Kniga"}}, nil
}

func (catalogue) List(context.Context, uint32, uint32) ([]*service.BookWithAuthor, error) {
	return nil, nil
}

func (catalogue) Create(_ context.Context, in service.NewBookInput) (*domain.Book, error) {
	return &domain.Book{ID: uuid.New(), Title: in.Title}, nil
}

func (catalogue) Delete(context.Context, uuid.UUID) error { return nil }

type authorShelf struct{}

func (authorShelf) GetByID(_ context.Context, id uuid.UUID) (*service.AuthorWithBooks, error) {
	return &service.AuthorWithBooks{Author: &domain.Author{ID: id, FirstName: "A", LastName: "B"}}, nil
}

func (authorShelf) List(context.Context, uint32, uint32) ([]*service.AuthorWithBooks, error) {
	return nil, nil
}

func (authorShelf) Create(_ context.Context, in service.NewAuthorInput) (*domain.Author, error) {
	return &domain.Author{ID: uuid.New(), FirstName: in.FirstName, LastName: in.LastName}, nil
}

func (authorShelf) Delete(context.Context, uuid.UUID) error { return nil }

type server struct {
	app      *fiber.App
	tokens   *auth.TokenManager
	accounts accountStore
	user     *domain.User
	admin    *domain.User
}

func newServer(t *testing.T) *server {
	t.Helper()
	tokens, err := auth.NewTokenManager("router-secret")
	require.NoError(t, err)

	user := &domain.User{ID: uuid.New(), Nickname: "reader", Role: domain.RoleUser}
	admin := &domain.User{ID: uuid.New(), Nickname: "admin", Role: domain.RoleAdmin}
	accounts := accountStore{user.ID: user, admin.ID: admin}

	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)
	logger := zap.NewNop()
	validate := handlers.NewValidator()

	app := fiber.New()
	RegisterMiddlewares(app, logger, metrics, time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:   handlers.NewHealthHandler("bookstore", "test"),
		Auth:     handlers.NewAuthHandler(noAuth{}, validate),
		Users:    handlers.NewUsersHandler(accounts, validate),
		Books:    handlers.NewBooksHandler(catalogue{}, validate),
		Authors:  handlers.NewAuthorsHandler(authorShelf{}, validate),
		Tokens:   tokens,
		Accounts: accounts,
		Logger:   logger,
		Metrics:  metrics,
		Gatherer: reg,
	})
	app.Get("/boom", func(*fiber.Ctx) error { panic("boom") })
	app.Get("/deadline", func(c *fiber.Ctx) error {
		if _, ok := c.UserContext().Deadline(); !ok {
			return c.SendStatus(http.StatusTeapot)
		}
		return c.SendStatus(http.StatusOK)
	})

	return &server{app: app, tokens: tokens, accounts: accounts, user: user, admin: admin}
}

func (s *server) bearer(t *testing.T, u *domain.User) string {
	t.Helper()
	token, _, err := s.tokens.Issue(u.ID, u.Role)
	require.NoError(t, err)
	return "Bearer " + token
}

type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (s *server) do(t *testing.T, method, target, authorization, body string) (int, string) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if authorization != "" {
		req.Header.Set(fiber.HeaderAuthorization, authorization)
	}

	resp, err := s.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(raw)
}

func errorMessage(t *testing.T, body string) string {
	t.Helper()
	var e apiError
	require.NoError(t, json.Unmarshal([]byte(body), &e))
	return e.Error.Message
}

func TestRoutes_Unguarded(t *testing.T) {
	s := newServer(t)

	status, body := s.do(t, http.MethodGet, "/api/ping", "", "")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body)

	status, _ = s.do(t, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodPost, "/api/auth/login", "", `{"nickname":"reader","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestRoutes_GuardedGroups(t *testing.T) {
	s := newServer(t)
	userAuth := s.bearer(t, s.user)
	adminAuth := s.bearer(t, s.admin)
	bookID := uuid.NewString()

	tests := []struct {
		name          string
		method        string
		target        string
		authorization string
		body          string
		status        int
		message       string
	}{
		{"no credentials", http.MethodGet, "/api/book", "", "", http.StatusUnauthorized, "unauthorized"},
		{"garbage token", http.MethodGet, "/api/author", "Bearer nope", "", http.StatusUnauthorized, "unauthorized"},
		{"user reads books", http.MethodGet, "/api/book/" + bookID, userAuth, "", http.StatusOK, ""},
		{"user reads authors", http.MethodGet, "/api/author", userAuth, "", http.StatusOK, ""},
		{"user reads users", http.MethodGet, "/api/user", userAuth, "", http.StatusOK, ""},
		{"user adds book", http.MethodPost, "/api/book", userAuth, `{"title":"Kniga"}`, http.StatusForbidden, "Insufficient rights for this action."},
		{"user deletes author", http.MethodDelete, "/api/author/" + bookID, userAuth, "", http.StatusForbidden, "Insufficient rights for this action."},
		{"admin adds book", http.MethodPost, "/api/book", adminAuth, `{"title":"Kniga"}`, http.StatusCreated, ""},
		{"admin deletes book", http.MethodDelete, "/api/book/" + bookID, adminAuth, "", http.StatusOK, ""},
		{"user suspends", http.MethodPut, "/api/user/" + s.admin.ID.String() + "/suspend", userAuth, `{"suspended":true}`, http.StatusForbidden, "Insufficient rights for this action."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := s.do(t, tt.method, tt.target, tt.authorization, tt.body)
			assert.Equal(t, tt.status, status)
			if tt.message != "" {
				assert.Equal(t, tt.message, errorMessage(t, body))
			}
		})
	}
}

func TestRoutes_SuspensionTakesEffectOnNextRequest(t *testing.T) {
	s := newServer(t)
	userAuth := s.bearer(t, s.user)

	status, _ := s.do(t, http.MethodGet, "/api/book", userAuth, "")
	require.Equal(t, http.StatusOK, status)

	status, _ = s.do(t, http.MethodPut, "/api/user/"+s.user.ID.String()+"/suspend", s.bearer(t, s.admin), `{"suspended":true}`)
	require.Equal(t, http.StatusOK, status)

	status, body := s.do(t, http.MethodGet, "/api/book", userAuth, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "The user account has been suspended. Contact the administrator.", errorMessage(t, body))
}

func TestRoutes_DeletedAccount(t *testing.T) {
	s := newServer(t)
	userAuth := s.bearer(t, s.user)
	delete(s.accounts, s.user.ID)

	status, body := s.do(t, http.MethodGet, "/api/author", userAuth, "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "The associated user account could not be found.", errorMessage(t, body))
}

func TestRoutes_Metrics(t *testing.T) {
	s := newServer(t)
	s.do(t, http.MethodGet, "/api/book", "", "")

	status, body := s.do(t, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, `bookstore_auth_decisions_total{decision="unauthenticated"} 1`)
	assert.Contains(t, body, "bookstore_http_requests_total")
}

func TestMiddlewares(t *testing.T) {
	s := newServer(t)

	status, body := s.do(t, http.MethodGet, "/boom", "", "")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "internal server error", errorMessage(t, body))

	status, _ = s.do(t, http.MethodGet, "/deadline", "", "")
	assert.Equal(t, http.StatusOK, status)

	status, body = s.do(t, http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, status)
	assert.NotEmpty(t, errorMessage(t, body))
}
