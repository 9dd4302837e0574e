package domain

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role is the closed set of account roles.
type Role string

const (
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole resolves wire ("User") and storage ("user") spellings.
func ParseRole(s string) (Role, error) {
	switch {
	case strings.EqualFold(s, string(RoleUser)):
		return RoleUser, nil
	case strings.EqualFold(s, string(RoleAdmin)):
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// StorageValue returns the value stored in the user_role column.
func (r Role) StorageValue() string {
	return strings.ToLower(string(r))
}

// UnmarshalJSON rejects roles outside the enumeration.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	parsed, err := ParseRole(raw)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// User is a registered account.
type User struct {
	ID             uuid.UUID
	FirstName      string
	LastName       string
	MiddleName     *string
	Nickname       string
	PasswordHash   string
	DateRegistered time.Time
	Role           Role
	Suspended      bool
}
