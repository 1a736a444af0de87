package usecase

import (
	"context"

	"notely/internal/domain/entity"
)

// CreateNoteInput defines the data required to create a note.
type CreateNoteInput struct {
	Title   string
	Content string
}

// UpdateNoteInput carries a partial note update. Nil fields retain their
// prior value.
type UpdateNoteInput struct {
	Title   *string
	Content *string
}

// NoteUsecase defines the note lifecycle operations. Every method takes the
// authenticated user's ID as a scoping parameter; it is supplied only by the
// auth middleware, never by request input.
type NoteUsecase interface {
	List(ctx context.Context, userID string) ([]*entity.Note, error)
	Create(ctx context.Context, userID string, input *CreateNoteInput) (*entity.Note, error)
	Get(ctx context.Context, userID, noteID string) (*entity.Note, error)
	Update(ctx context.Context, userID, noteID string, input *UpdateNoteInput) (*entity.Note, error)
	Delete(ctx context.Context, userID, noteID string) error
}
