package domain

import "github.com/google/uuid"

// Author writes books.
type Author struct {
	ID         uuid.UUID
	FirstName  string
	LastName   string
	MiddleName *string
}
