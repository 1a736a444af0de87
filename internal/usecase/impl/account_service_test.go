package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"notely/internal/domain/entity"
	domainerrors "notely/internal/domain/errors"
	"notely/internal/domain/repository"
	mockRepo "notely/internal/mocks/repository"
	mockSvc "notely/internal/mocks/service"
	"notely/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewAccountService(AccountServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return accountServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAccountService_Register_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			assert.Equal(t, input.Username, user.Username)
			assert.Equal(t, input.Email, user.Email)
			assert.Equal(t, "hashed_password", user.PasswordHash)
			user.ID = "64f000000000000000000001"
		}).
		Return(nil)

	fx.tokenService.EXPECT().Generate("64f000000000000000000001").Return("signed.token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, "64f000000000000000000001", output.UserID)
	assert.Equal(t, input.Username, output.Username)
}

func TestAccountService_Register_DuplicateUser(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("duplicate key"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestAccountService_Register_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "pw1",
	}

	fx.hasher.EXPECT().Hash(input.Password).Return("", errors.New("cost out of range"))

	output, err := fx.service.Register(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Identifier: "alice",
		Password:   "pw1",
	}

	user := &entity.User{
		ID:           "64f000000000000000000001",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, input.Identifier).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(user.ID).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "signed.token", output.AccessToken)
	assert.Equal(t, "bearer", output.TokenType)
	assert.Equal(t, user.ID, output.UserID)
	assert.Equal(t, user.Username, output.Username)
}

func TestAccountService_Login_ByEmail(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Identifier: "alice@example.com",
		Password:   "pw1",
	}

	user := &entity.User{
		ID:           "64f000000000000000000001",
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, input.Identifier).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().Generate(user.ID).Return("signed.token", nil)

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "alice", output.Username)
}

func TestAccountService_Login_UnknownIdentifier(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Identifier: "nobody",
		Password:   "pw1",
	}

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, input.Identifier).
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{
		Identifier: "alice",
		Password:   "wrong",
	}

	user := &entity.User{
		ID:           "64f000000000000000000001",
		Username:     "alice",
		PasswordHash: "hashed_password",
	}

	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, input.Identifier).Return(user, nil)
	fx.hasher.EXPECT().Check(input.Password, user.PasswordHash).Return(false)

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

// An unknown identifier and a wrong password must surface the same error so
// responses do not reveal which field was wrong.
func TestAccountService_Login_FailureIndistinguishable(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByUsernameOrEmail(ctx, "nobody").
		Return(nil, repository.ErrUserNotFound)

	_, unknownErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "nobody", Password: "pw1"})

	user := &entity.User{ID: "64f000000000000000000001", Username: "alice", PasswordHash: "hashed_password"}
	fx.userRepo.EXPECT().FindByUsernameOrEmail(ctx, "alice").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, mismatchErr := fx.service.Login(ctx, &usecase.LoginInput{Identifier: "alice", Password: "wrong"})

	var unknownApp, mismatchApp domainerrors.AppError
	require.True(t, errors.As(unknownErr, &unknownApp))
	require.True(t, errors.As(mismatchErr, &mismatchApp))
	assert.Equal(t, unknownApp.ErrorCode(), mismatchApp.ErrorCode())
	assert.Equal(t, unknownApp.HTTPCode(), mismatchApp.HTTPCode())
}

func TestAccountService_GetProfile_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:       "64f000000000000000000001",
		Username: "alice",
		Email:    "alice@example.com",
	}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

	output, err := fx.service.GetProfile(ctx, user.ID)

	require.NoError(t, err)
	assert.Equal(t, user.Username, output.Username)
	assert.Equal(t, user.Email, output.Email)
}

func TestAccountService_GetProfile_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()

	fx.userRepo.EXPECT().
		FindByID(ctx, "64f000000000000000000099").
		Return(nil, repository.ErrUserNotFound)

	output, err := fx.service.GetProfile(ctx, "64f000000000000000000099")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
