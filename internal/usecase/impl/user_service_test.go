package impl

import (
	"context"
	"testing"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	mockSvc "ayra/internal/mocks/service"
	mockUC "ayra/internal/mocks/usecase"
	"ayra/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	*txFixture
	service  usecase.UserUsecase
	resolver *mockUC.MockCoordinateResolver
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	tx := newTxFixture(t)
	resolver := mockUC.NewMockCoordinateResolver(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewUserService(UserServiceParams{
		TxManager: tx.txManager,
		Resolver:  resolver,
		Hasher:    hasher,
		Logger:    discardLogger(),
	})

	return userServiceFixtures{txFixture: tx, service: service, resolver: resolver, hasher: hasher}
}

func sampleUser() *entity.User {
	return &entity.User{ID: 1, Name: "João Silva", Email: "joao@example.com", PasswordHash: "hash", Phone: "11999999999"}
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()
	coordinate := &entity.Coordinate{ID: 3}
	input := &usecase.RegisterUserInput{
		Name:       "Maria Souza",
		Email:      "  Maria@Example.com ",
		Password:   "senha456",
		Phone:      "11888888888",
		Coordinate: &usecase.CoordinateInput{Latitude: -23.48, Longitude: -46.63},
	}

	f.hasher.EXPECT().Hash("senha456").Return("hashed", nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(nil, repository.ErrUserNotFound)
	f.resolver.EXPECT().Resolve(ctx, f.coordinateRepo, input.Coordinate).Return(coordinate, nil)
	f.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "maria@example.com" && u.PasswordHash == "hashed" && *u.CoordinateID == 3
		})).
		RunAndReturn(func(_ context.Context, u *entity.User) error {
			u.ID = 2

			return nil
		})

	user, err := f.service.RegisterUser(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "maria@example.com", user.Email)
	assert.Same(t, coordinate, user.Coordinate)
}

func TestUserService_RegisterUser_WithoutCoordinate(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "a@b.c").Return(nil, repository.ErrUserNotFound)
	f.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{Name: "A", Email: "a@b.c", Password: "pw"})

	require.NoError(t, err)
	assert.Nil(t, user.CoordinateID)
	f.resolver.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "joao@example.com").Return(sampleUser(), nil)

	user, err := f.service.RegisterUser(ctx, &usecase.RegisterUserInput{Email: "joao@example.com", Password: "pw"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	f.userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_RegisterUser_HashFailure(t *testing.T) {
	f := createTestUserService(t)

	f.hasher.EXPECT().Hash("pw").Return("", assert.AnError)

	_, err := f.service.RegisterUser(context.Background(), &usecase.RegisterUserInput{Email: "a@b.c", Password: "pw"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
	f.assertNoTransaction(t)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(77)).Return(nil, repository.ErrUserNotFound)

	_, err := f.service.GetProfile(ctx, 77)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateUser_Success(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("nova").Return("new-hash", nil)
	f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(sampleUser(), nil)
	f.userRepo.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Name == "João S." && u.PasswordHash == "new-hash" && u.Phone == "11999999999"
		})).
		Return(nil)

	user, err := f.service.UpdateUser(ctx, 1, "JOAO@example.com", &usecase.UpdateUserInput{
		Name:     ptr("João S."),
		Password: ptr("nova"),
	})

	require.NoError(t, err)
	assert.Equal(t, "João S.", user.Name)
	assert.Equal(t, "joao@example.com", user.Email)
}

func TestUserService_UpdateUser_EmailTaken(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(sampleUser(), nil)
	f.userRepo.EXPECT().FindByEmail(ctx, "maria@example.com").Return(&entity.User{ID: 2}, nil)

	_, err := f.service.UpdateUser(ctx, 1, "joao@example.com", &usecase.UpdateUserInput{Email: ptr("maria@example.com")})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_UpdateUser_OtherAccountForbidden(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(sampleUser(), nil)

	_, err := f.service.UpdateUser(ctx, 1, "maria@example.com", &usecase.UpdateUserInput{Name: ptr("x")})

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_DeleteUser(t *testing.T) {
	t.Run("self", func(t *testing.T) {
		f := createTestUserService(t)
		ctx := context.Background()

		f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(sampleUser(), nil)
		f.userRepo.EXPECT().Delete(ctx, int64(1)).Return(nil)

		require.NoError(t, f.service.DeleteUser(ctx, 1, "joao@example.com"))
	})

	t.Run("other account", func(t *testing.T) {
		f := createTestUserService(t)
		ctx := context.Background()

		f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(sampleUser(), nil)

		err := f.service.DeleteUser(ctx, 1, "maria@example.com")

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
		f.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}
