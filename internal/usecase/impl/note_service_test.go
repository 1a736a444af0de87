package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"notely/internal/domain/entity"
	domainerrors "notely/internal/domain/errors"
	"notely/internal/domain/repository"
	mockRepo "notely/internal/mocks/repository"
	"notely/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// noteServiceFixtures holds all test dependencies for note service tests.
type noteServiceFixtures struct {
	service  usecase.NoteUsecase
	noteRepo *mockRepo.MockNoteRepository
}

func createTestNoteService(t *testing.T) noteServiceFixtures {
	noteRepo := mockRepo.NewMockNoteRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewNoteService(NoteServiceParams{
		NoteRepo: noteRepo,
		Logger:   logger,
	})

	return noteServiceFixtures{
		service:  service,
		noteRepo: noteRepo,
	}
}

func strPtr(s string) *string {
	return &s
}

func TestNoteService_List_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	notes := []*entity.Note{
		{ID: "64f000000000000000000010", Title: "first", Content: "a", UserID: userID},
		{ID: "64f000000000000000000011", Title: "second", Content: "b", UserID: userID},
	}

	fx.noteRepo.EXPECT().ListByOwner(ctx, userID).Return(notes, nil)

	result, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, "first", result[0].Title)
}

func TestNoteService_List_Empty(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"

	fx.noteRepo.EXPECT().ListByOwner(ctx, userID).Return([]*entity.Note{}, nil)

	result, err := fx.service.List(ctx, userID)

	require.NoError(t, err)
	assert.Empty(t, result)
	assert.NotNil(t, result)
}

func TestNoteService_Create_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	input := &usecase.CreateNoteInput{
		Title:   "groceries",
		Content: "milk, eggs",
	}

	now := time.Now().UTC()

	fx.noteRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Note")).
		Run(func(ctx context.Context, note *entity.Note) {
			assert.Equal(t, input.Title, note.Title)
			assert.Equal(t, input.Content, note.Content)
			assert.Equal(t, userID, note.UserID)
			note.ID = "64f000000000000000000010"
			note.CreatedAt = now
			note.UpdatedAt = now
		}).
		Return(nil)

	note, err := fx.service.Create(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "64f000000000000000000010", note.ID)
	assert.Equal(t, userID, note.UserID)
	assert.Equal(t, now, note.CreatedAt)
	assert.Equal(t, now, note.UpdatedAt)
}

func TestNoteService_Get_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	noteID := "64f000000000000000000010"
	note := &entity.Note{ID: noteID, Title: "groceries", UserID: userID}

	fx.noteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(note, nil)

	result, err := fx.service.Get(ctx, userID, noteID)

	require.NoError(t, err)
	assert.Equal(t, noteID, result.ID)
}

// A note that exists but belongs to another user surfaces exactly like a
// missing one; the repository reports the same sentinel for both.
func TestNoteService_Get_NotOwned(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000002"
	noteID := "64f000000000000000000010"

	fx.noteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(nil, repository.ErrNoteNotFound)

	result, err := fx.service.Get(ctx, userID, noteID)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_Update_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	noteID := "64f000000000000000000010"
	input := &usecase.UpdateNoteInput{
		Title: strPtr("renamed"),
	}

	updated := &entity.Note{ID: noteID, Title: "renamed", Content: "milk, eggs", UserID: userID}

	fx.noteRepo.EXPECT().
		Update(ctx, userID, noteID, mock.AnythingOfType("*repository.NoteUpdate")).
		Run(func(ctx context.Context, userID, noteID string, update *repository.NoteUpdate) {
			require.NotNil(t, update.Title)
			assert.Equal(t, "renamed", *update.Title)
			assert.Nil(t, update.Content)
		}).
		Return(updated, nil)

	note, err := fx.service.Update(ctx, userID, noteID, input)

	require.NoError(t, err)
	assert.Equal(t, "renamed", note.Title)
	assert.Equal(t, "milk, eggs", note.Content)
}

// An update carrying no fields must not write to the store.
func TestNoteService_Update_EmptyInput(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	noteID := "64f000000000000000000010"
	current := &entity.Note{ID: noteID, Title: "groceries", UserID: userID}

	fx.noteRepo.EXPECT().FindByID(ctx, userID, noteID).Return(current, nil)

	note, err := fx.service.Update(ctx, userID, noteID, &usecase.UpdateNoteInput{})

	require.NoError(t, err)
	assert.Equal(t, "groceries", note.Title)
	fx.noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestNoteService_Update_NotFound(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	noteID := "64f000000000000000000099"

	fx.noteRepo.EXPECT().
		Update(ctx, userID, noteID, mock.AnythingOfType("*repository.NoteUpdate")).
		Return(nil, repository.ErrNoteNotFound)

	note, err := fx.service.Update(ctx, userID, noteID, &usecase.UpdateNoteInput{Title: strPtr("x")})

	assert.Error(t, err)
	assert.Nil(t, note)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}

func TestNoteService_Delete_Success(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	noteID := "64f000000000000000000010"

	fx.noteRepo.EXPECT().Delete(ctx, userID, noteID).Return(nil)

	err := fx.service.Delete(ctx, userID, noteID)

	require.NoError(t, err)
}

// Deleting the same note twice reports NotFound the second time.
func TestNoteService_Delete_AlreadyGone(t *testing.T) {
	fx := createTestNoteService(t)

	ctx := context.Background()
	userID := "64f000000000000000000001"
	noteID := "64f000000000000000000010"

	fx.noteRepo.EXPECT().Delete(ctx, userID, noteID).Return(repository.ErrNoteNotFound)

	err := fx.service.Delete(ctx, userID, noteID)

	assert.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoteNotFound))
}
