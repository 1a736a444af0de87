package mongodb

import (
	"context"
	"time"

	"notely/internal/domain/entity"
	domainerrors "notely/internal/domain/errors"
	"notely/internal/domain/repository"
	"notely/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// noteRepository implements the repository.NoteRepository interface on MongoDB.
// Ownership scoping is folded into every query filter: a note belonging to a
// different user and a note that does not exist are the same non-match, which
// closes the existence-leak and avoids any check-then-act race.
type noteRepository struct {
	coll *mongo.Collection
}

// NoteRepositoryParams holds dependencies for the note repository, injected by Fx.
type NoteRepositoryParams struct {
	fx.In

	DB *mongo.Database
}

// NewNoteRepository is the constructor for noteRepository.
func NewNoteRepository(params NoteRepositoryParams) repository.NoteRepository {
	return &noteRepository{
		coll: params.DB.Collection(notesCollection),
	}
}

// ListByOwner returns all notes owned by userID in store-native order.
func (repo *noteRepository) ListByOwner(ctx context.Context, userID string) ([]*entity.Note, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list notes")
	}
	defer cursor.Close(ctx)

	notes := make([]*entity.Note, 0)
	for cursor.Next(ctx) {
		var noteM model.NoteModel
		if err := cursor.Decode(&noteM); err != nil {
			return nil, errors.Wrap(err, "failed to decode note document")
		}
		notes = append(notes, toNoteDomain(&noteM))
	}
	if err := cursor.Err(); err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to iterate notes")
	}

	return notes, nil
}

// Create persists a new note owned by note.UserID with both timestamps set to now.
func (repo *noteRepository) Create(ctx context.Context, note *entity.Note) error {
	now := time.Now().UTC()
	noteM := &model.NoteModel{
		Title:     note.Title,
		Content:   note.Content,
		UserID:    note.UserID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	result, err := repo.coll.InsertOne(ctx, noteM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create note")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type for note")
	}

	note.ID = oid.Hex()
	note.CreatedAt = noteM.CreatedAt
	note.UpdatedAt = noteM.UpdatedAt

	return nil
}

// FindByID retrieves the note with the given id owned by userID.
func (repo *noteRepository) FindByID(ctx context.Context, userID, noteID string) (*entity.Note, error) {
	filter, err := ownedNoteFilter(userID, noteID)
	if err != nil {
		return nil, err
	}

	var noteM model.NoteModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&noteM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to find note by id")
	}

	return toNoteDomain(&noteM), nil
}

// Update applies the supplied fields atomically and returns the note as it
// stands after the write. The updated timestamp is refreshed on every write.
func (repo *noteRepository) Update(ctx context.Context, userID, noteID string, update *repository.NoteUpdate) (*entity.Note, error) {
	filter, err := ownedNoteFilter(userID, noteID)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.Content != nil {
		set["content"] = *update.Content
	}

	var noteM model.NoteModel
	err = repo.coll.FindOneAndUpdate(
		ctx,
		filter,
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&noteM)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoteNotFound
		}

		return nil, errors.Wrap(err, "failed to update note")
	}

	return toNoteDomain(&noteM), nil
}

// Delete removes the note with the given id owned by userID.
func (repo *noteRepository) Delete(ctx context.Context, userID, noteID string) error {
	filter, err := ownedNoteFilter(userID, noteID)
	if err != nil {
		return err
	}

	result, err := repo.coll.DeleteOne(ctx, filter)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete note")
	}
	if result.DeletedCount == 0 {
		return repository.ErrNoteNotFound
	}

	return nil
}

// ownedNoteFilter builds the {_id, user_id} predicate used by every
// single-note operation. An unparsable note id matches nothing.
func ownedNoteFilter(userID, noteID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(noteID)
	if err != nil {
		return nil, repository.ErrNoteNotFound
	}

	return bson.M{"_id": oid, "user_id": userID}, nil
}

// toNoteDomain maps the persistence model back to a pure domain entity.
func toNoteDomain(noteM *model.NoteModel) *entity.Note {
	return &entity.Note{
		ID:        noteM.ID.Hex(),
		Title:     noteM.Title,
		Content:   noteM.Content,
		UserID:    noteM.UserID,
		CreatedAt: noteM.CreatedAt,
		UpdatedAt: noteM.UpdatedAt,
	}
}
