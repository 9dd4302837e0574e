package service

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/bookstore/internal/auth"
	"github.com/spec-kit/bookstore/internal/domain"
	"github.com/spec-kit/bookstore/internal/repository"
)

var (
	nicknamePattern = regexp.MustCompile(`^[a-zA-Z0-9.\-_]+$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Zа-яА-Я]+$`)
)

const minNicknameLen = 3

// ValidNickname reports whether s is an acceptable nickname.
func ValidNickname(s string) bool {
	return len(s) >= minNicknameLen && nicknamePattern.MatchString(s)
}

// ValidName reports whether s is an acceptable first, last or middle name.
func ValidName(s string) bool {
	return namePattern.MatchString(s)
}

// RegisterInput is the data needed to open an account.
type RegisterInput struct {
	FirstName  string
	LastName   string
	MiddleName *string
	Nickname   string
	Password   string
}

func (in RegisterInput) valid() bool {
	if !ValidNickname(in.Nickname) || in.Password == "" {
		return false
	}
	if !ValidName(in.FirstName) || !ValidName(in.LastName) {
		return false
	}
	return in.MiddleName == nil || ValidName(*in.MiddleName)
}

// IssuedToken is a freshly signed credential.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// AuthService coordinates registration and login.
type AuthService struct {
	users      repository.UserRepository
	tokens     *auth.TokenManager
	bcryptCost int
	now        func() time.Time
}

// NewAuthService builds the service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, now: time.Now}
}

// Register creates a regular, active account and returns a token for it.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*IssuedToken, error) {
	if !in.valid() {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.users.GetByNickname(ctx, in.Nickname); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uuid.New(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		MiddleName:     in.MiddleName,
		Nickname:       in.Nickname,
		PasswordHash:   hash,
		DateRegistered: s.now().UTC(),
		Role:           domain.RoleUser,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.issue(user)
}

// Login checks the password and returns a token. Unknown nicknames and wrong
// passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, nickname, password string) (*IssuedToken, error) {
	user, err := s.users.GetByNickname(ctx, nickname)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return s.issue(user)
}

func (s *AuthService) issue(user *domain.User) (*IssuedToken, error) {
	token, exp, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &IssuedToken{Token: token, ExpiresAt: exp}, nil
}
