package mongodb

import (
	"context"
	"log/slog"
	"time"

	"notely/internal/domain/entity"
	domainerrors "notely/internal/domain/errors"
	"notely/internal/domain/lifecycle"
	"notely/internal/domain/repository"
	"notely/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

// userRepository implements the repository.UserRepository interface on MongoDB.
type userRepository struct {
	coll *mongo.Collection
}

// UserRepositoryParams holds dependencies for the user repository, injected by Fx.
type UserRepositoryParams struct {
	fx.In
	fx.Lifecycle

	DB     *mongo.Database
	Logger *slog.Logger
}

// NewUserRepository is the constructor for userRepository. The unique indexes
// backing the username/email invariants are created on startup, before any
// request is served.
func NewUserRepository(params UserRepositoryParams) repository.UserRepository {
	repo := &userRepository{
		coll: params.DB.Collection(usersCollection),
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return repo.ensureIndexes(ctx)
		},
	})

	return repo
}

func (repo *userRepository) ensureIndexes(ctx context.Context) error {
	_, err := repo.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})

	return errors.Wrap(err, "failed to create user indexes")
}

// Create persists a new user. The store assigns the ID; the creation
// timestamp is set here so it is never caller-controlled. A duplicate key on
// either unique index surfaces as the domain conflict error.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := &model.UserModel{
		Username:  user.Username,
		Email:     user.Email,
		Password:  user.PasswordHash,
		CreatedAt: time.Now().UTC(),
	}

	result, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("username or email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	oid, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return errors.New("unexpected inserted id type for user")
	}

	user.ID = oid.Hex()
	user.CreatedAt = userM.CreatedAt

	return nil
}

// FindByUsernameOrEmail retrieves a user matching the identifier on either
// field, for login lookups that accept both in one input.
func (repo *userRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*entity.User, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"username": identifier},
		bson.M{"email": identifier},
	}}

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, filter).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by identifier")
	}

	return toUserDomain(&userM), nil
}

// FindByID retrieves a single user by their unique ID. An identifier that is
// not a valid ObjectID cannot match any document, so it reports not-found.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrUserNotFound
	}

	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&userM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// toUserDomain maps the persistence model back to a pure domain entity.
func toUserDomain(userM *model.UserModel) *entity.User {
	return &entity.User{
		ID:           userM.ID.Hex(),
		Username:     userM.Username,
		Email:        userM.Email,
		PasswordHash: userM.Password,
		CreatedAt:    userM.CreatedAt,
	}
}
