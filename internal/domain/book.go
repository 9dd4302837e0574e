package domain

import "github.com/google/uuid"

// Book is a catalogue entry, optionally attributed to an author.
type Book struct {
	ID       uuid.UUID
	Title    string
	AuthorID *uuid.UUID
}
