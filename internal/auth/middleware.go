package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/bookstore/internal/observability"
	apperrors "github.com/spec-kit/bookstore/pkg/util"
)

// AuthMiddleware adapts a Gate to fiber.
type AuthMiddleware struct {
	gate    *Gate
	metrics *observability.Metrics
}

// NewAuthMiddleware constructs middleware for one route group.
func NewAuthMiddleware(gate *Gate, metrics *observability.Metrics) *AuthMiddleware {
	return &AuthMiddleware{gate: gate, metrics: metrics}
}

// Handle authorizes the request and, on success, injects the claims before calling the next handler.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	res := m.gate.Authorize(c.UserContext(), c.Get(fiber.HeaderAuthorization))
	m.metrics.RecordAuthDecision(res.Decision.String())

	if res.Decision != Authorized {
		return decisionError(res.Decision)
	}

	c.Locals(claimsLocalsKey, res.Claims)
	c.SetUserContext(WithClaims(c.UserContext(), res.Claims))
	return c.Next()
}

// decisionError maps a denial to the static client-facing error. Causes are logged by the gate.
func decisionError(d Decision) error {
	switch d {
	case Unauthenticated:
		return apperrors.NewUnauthorized("unauthorized")
	case Forbidden:
		return apperrors.NewForbidden("Insufficient rights for this resource.")
	case AccountMissing:
		return apperrors.NewNotFoundMessage("The associated user account could not be found.")
	case Suspended:
		return apperrors.NewForbidden("The user account has been suspended. Contact the administrator.")
	default:
		return apperrors.NewInternalError(nil)
	}
}
