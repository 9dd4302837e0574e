package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/domain"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// RequireRole restricts a single route to the given roles. It must run after AuthMiddleware.Handle.
func RequireRole(allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		claims, ok := ClaimsFromFiber(c)
		if !ok {
			return apperrors.NewForbidden("authentication required")
		}
		if _, exists := allowedSet[claims.Role]; !exists {
			return apperrors.NewForbidden("Insufficient rights for this action.")
		}
		return c.Next()
	}
}
