package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/api/http/handlers"
	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/observability"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Users   *handlers.UsersHandler
	Books   *handlers.BooksHandler
	Authors *handlers.AuthorsHandler

	Tokens   *auth.TokenManager
	Accounts auth.AccountLookup
	Logger   *zap.Logger
	Metrics  *observability.Metrics
	Gatherer prometheus.Gatherer
}

// guard builds a dedicated gate for one route group.
func (cfg RouteConfig) guard(permitted ...domain.Role) fiber.Handler {
	gate := auth.NewGate(cfg.Tokens, cfg.Accounts, cfg.Logger, permitted...)
	return auth.NewAuthMiddleware(gate, cfg.Metrics).Handle
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}

	api := app.Group("/api")
	api.Get("/ping", cfg.Health.Ping)

	authGroup := api.Group("/auth")
	authGroup.Post("/register", cfg.Auth.Register)
	authGroup.Post("/login", cfg.Auth.Login)

	adminOnly := auth.RequireRole(domain.RoleAdmin)

	users := api.Group("/user", cfg.guard(domain.RoleUser, domain.RoleAdmin))
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Put("/:id/suspend", adminOnly, cfg.Users.UpdateSuspended)

	books := api.Group("/book", cfg.guard(domain.RoleUser, domain.RoleAdmin))
	books.Get("/", cfg.Books.List)
	books.Get("/:id", cfg.Books.Get)
	books.Post("/", adminOnly, cfg.Books.Create)
	books.Delete("/:id", adminOnly, cfg.Books.Delete)

	authors := api.Group("/author", cfg.guard(domain.RoleUser, domain.RoleAdmin))
	authors.Get("/", cfg.Authors.List)
	authors.Get("/:id", cfg.Authors.Get)
	authors.Post("/", adminOnly, cfg.Authors.Create)
	authors.Delete("/:id", adminOnly, cfg.Authors.Delete)
}
