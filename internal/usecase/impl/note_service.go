package impl

import (
	"context"
	"log/slog"

	deliverycontext "notely/internal/delivery/context"
	"notely/internal/domain/entity"
	domainerrors "notely/internal/domain/errors"
	"notely/internal/domain/repository"
	"notely/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// noteService implements the NoteUsecase interface. It never decides
// ownership itself; the scoping user ID is handed straight to the
// repository, where it becomes part of the lookup predicate.
type noteService struct {
	noteRepo repository.NoteRepository
	logger   *slog.Logger
}

// NoteServiceParams holds dependencies for noteService, injected by Fx.
type NoteServiceParams struct {
	fx.In

	NoteRepo repository.NoteRepository
	Logger   *slog.Logger
}

// NewNoteService is the constructor for noteService.
func NewNoteService(params NoteServiceParams) usecase.NoteUsecase {
	return &noteService{
		noteRepo: params.NoteRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *noteService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all notes owned by userID.
func (srv *noteService) List(ctx context.Context, userID string) ([]*entity.Note, error) {
	notes, err := srv.noteRepo.ListByOwner(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list notes", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list notes")
	}

	return notes, nil
}

// Create persists a new note owned by userID and returns it with its
// assigned ID and timestamps.
func (srv *noteService) Create(ctx context.Context, userID string, input *usecase.CreateNoteInput) (*entity.Note, error) {
	note := &entity.Note{
		Title:   input.Title,
		Content: input.Content,
		UserID:  userID,
	}

	if err := srv.noteRepo.Create(ctx, note); err != nil {
		srv.log(ctx).Error("Failed to create note", slog.String("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create note")
	}

	srv.log(ctx).Debug("Note created", slog.String("noteID", note.ID), slog.String("userID", userID))

	return note, nil
}

// Get retrieves a single note scoped to its owner.
func (srv *noteService) Get(ctx context.Context, userID, noteID string) (*entity.Note, error) {
	note, err := srv.noteRepo.FindByID(ctx, userID, noteID)
	if err != nil {
		return nil, srv.mapNoteError(ctx, err, "failed to get note", noteID)
	}

	return note, nil
}

// Update applies a partial update. When no fields are supplied the store is
// not written; the current note is returned unchanged.
func (srv *noteService) Update(ctx context.Context, userID, noteID string, input *usecase.UpdateNoteInput) (*entity.Note, error) {
	update := &repository.NoteUpdate{
		Title:   input.Title,
		Content: input.Content,
	}

	if update.IsEmpty() {
		note, err := srv.noteRepo.FindByID(ctx, userID, noteID)
		if err != nil {
			return nil, srv.mapNoteError(ctx, err, "failed to load note for empty update", noteID)
		}

		return note, nil
	}

	note, err := srv.noteRepo.Update(ctx, userID, noteID, update)
	if err != nil {
		return nil, srv.mapNoteError(ctx, err, "failed to update note", noteID)
	}

	srv.log(ctx).Debug("Note updated", slog.String("noteID", noteID), slog.String("userID", userID))

	return note, nil
}

// Delete removes a note scoped to its owner.
func (srv *noteService) Delete(ctx context.Context, userID, noteID string) error {
	if err := srv.noteRepo.Delete(ctx, userID, noteID); err != nil {
		return srv.mapNoteError(ctx, err, "failed to delete note", noteID)
	}

	srv.log(ctx).Debug("Note deleted", slog.String("noteID", noteID), slog.String("userID", userID))

	return nil
}

// mapNoteError translates the repository sentinel into the domain error the
// boundary knows how to render, and logs anything unexpected.
func (srv *noteService) mapNoteError(ctx context.Context, err error, msg, noteID string) error {
	if errors.Is(err, repository.ErrNoteNotFound) {
		return errors.Wrap(domainerrors.ErrNoteNotFound, msg)
	}

	srv.log(ctx).Error("Note store operation failed", slog.String("noteID", noteID), slog.Any("error", err))

	return errors.Wrap(err, msg)
}
