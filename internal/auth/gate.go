package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore/internal/domain"
)

// Decision is the outcome of authorizing one request.
type Decision int

const (
	Authorized Decision = iota
	Unauthenticated
	Forbidden
	AccountMissing
	Suspended
	InternalError
)

func (d Decision) String() string {
	switch d {
	case Authorized:
		return "authorized"
	case Unauthenticated:
		return "unauthenticated"
	case Forbidden:
		return "forbidden"
	case AccountMissing:
		return "account_missing"
	case Suspended:
		return "suspended"
	case InternalError:
		return "internal_error"
	default:
		return fmt.Sprintf("decision(%d)", int(d))
	}
}

var (
	errMissingHeader = errors.New("missing authorization header")
	errBadHeader     = errors.New("invalid authorization header")
	errRoleDenied    = errors.New("role not permitted for this resource group")
	errSuspended     = errors.New("account suspended")
)

// Result carries the decision, the verified claims when present, and the internal cause.
// Err is for logs and tests only and must not be shown to clients.
type Result struct {
	Decision Decision
	Claims   *Claims
	Err      error
}

// AccountLookup resolves a subject to its account. It returns domain.ErrUserNotFound
// when the account does not exist.
type AccountLookup interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Gate decides whether a request may reach a guarded route group.
// It is immutable after construction and safe for concurrent use.
type Gate struct {
	tokens    *TokenManager
	accounts  AccountLookup
	permitted map[domain.Role]struct{}
	logger    *zap.Logger
}

// NewGate builds a gate admitting only the permitted roles.
func NewGate(tokens *TokenManager, accounts AccountLookup, logger *zap.Logger, permitted ...domain.Role) *Gate {
	if logger == nil {
		logger = zap.NewNop()
	}
	set := make(map[domain.Role]struct{}, len(permitted))
	for _, role := range permitted {
		set[role] = struct{}{}
	}
	return &Gate{tokens: tokens, accounts: accounts, permitted: set, logger: logger}
}

// Permits reports whether role belongs to the gate's role set.
func (g *Gate) Permits(role domain.Role) bool {
	_, ok := g.permitted[role]
	return ok
}

// Authorize runs the checks in order and stops at the first failure. Only the
// account lookup performs I/O, and it runs at most once.
func (g *Gate) Authorize(ctx context.Context, authorizationHeader string) Result {
	token, err := bearerToken(authorizationHeader)
	if err != nil {
		return deny(Unauthenticated, err)
	}

	claims, err := g.tokens.Verify(token)
	if err != nil {
		return deny(Unauthenticated, err)
	}

	if !g.Permits(claims.Role) {
		return Result{Decision: Forbidden, Claims: claims, Err: errRoleDenied}
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		g.logger.Error("failed to extract user id from token claims", zap.Error(err))
		return deny(InternalError, err)
	}

	account, err := g.accounts.GetByID(ctx, accountID)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return deny(AccountMissing, err)
	case err != nil:
		g.logger.Error("account lookup failed",
			zap.String("user_id", accountID.String()),
			zap.Error(err),
		)
		return deny(InternalError, err)
	}

	if account.Suspended {
		return Result{Decision: Suspended, Claims: claims, Err: errSuspended}
	}

	return Result{Decision: Authorized, Claims: claims}
}

func deny(d Decision, err error) Result {
	return Result{Decision: d, Err: err}
}

// bearerToken extracts the credential from an "Authorization: Bearer <token>" value.
func bearerToken(header string) (string, error) {
	if header == "" {
		return "", errMissingHeader
	}
	if !visibleASCII(header) {
		return "", errBadHeader
	}

	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errBadHeader
	}
	return token, nil
}

func visibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}
