package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

type claimsCtxKey struct{}

const claimsLocalsKey = "auth_claims"

// WithClaims returns a copy of ctx carrying verified claims.
func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsCtxKey{}, claims)
}

// ClaimsFromContext returns the claims injected by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsCtxKey{}).(*Claims)
	return claims, ok && claims != nil
}

// ClaimsFromFiber retrieves the claims stored on the fiber context.
func ClaimsFromFiber(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsLocalsKey).(*Claims)
	return claims, ok && claims != nil
}
