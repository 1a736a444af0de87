package repository

import (
	"context"
	"errors"

	"notely/internal/domain/entity"
)

// ErrNoteNotFound is returned when a note does not exist for the given owner.
// A note owned by a different user is reported identically to a missing one,
// so callers can never probe for the existence of someone else's notes.
var ErrNoteNotFound = errors.New("note not found")

// NoteUpdate carries a partial update. Nil fields are left untouched.
type NoteUpdate struct {
	Title   *string
	Content *string
}

// IsEmpty reports whether no fields were supplied.
func (u *NoteUpdate) IsEmpty() bool {
	return u == nil || (u.Title == nil && u.Content == nil)
}

// NoteRepository defines ownership-scoped note persistence. Every operation
// takes the authenticated user's ID and folds it into the lookup predicate;
// ownership is never checked after the fact.
type NoteRepository interface {
	// ListByOwner returns all notes owned by userID in store-native order.
	ListByOwner(ctx context.Context, userID string) ([]*entity.Note, error)

	// Create persists a new note owned by userID. The store assigns the ID
	// and both timestamps and writes them back onto the entity.
	Create(ctx context.Context, note *entity.Note) error

	// FindByID retrieves the note with the given id owned by userID.
	FindByID(ctx context.Context, userID, noteID string) (*entity.Note, error)

	// Update applies the supplied fields and refreshes the updated timestamp,
	// returning the resulting note. Empty updates must not reach the store;
	// callers use FindByID instead.
	Update(ctx context.Context, userID, noteID string, update *NoteUpdate) (*entity.Note, error)

	// Delete removes the note with the given id owned by userID.
	Delete(ctx context.Context, userID, noteID string) error
}
