package impl

import (
	"context"
	"testing"

	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/domain/service"
	mockSvc "ayra/internal/mocks/service"
	"ayra/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	*txFixture
	service      usecase.SessionUsecase
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	tx := newTxFixture(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewSessionService(SessionServiceParams{
		TxManager:    tx.txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       discardLogger(),
	})

	return sessionServiceFixtures{txFixture: tx, service: service, hasher: hasher, tokenService: tokenService}
}

func TestSessionService_Login_Success(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: 1, Email: "joao@example.com", PasswordHash: "hash"}
	tokens := &service.TokenPair{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}

	f.userRepo.EXPECT().FindByEmail(ctx, "joao@example.com").Return(user, nil)
	f.hasher.EXPECT().Check("senha123", "hash").Return(true)
	f.tokenService.EXPECT().GenerateTokens(int64(1), "joao@example.com").Return(tokens, nil)

	out, err := f.service.Login(ctx, usecase.LoginInput{Email: "Joao@Example.com", Password: "senha123"})

	require.NoError(t, err)
	assert.Same(t, tokens, out.Tokens)
	assert.Same(t, user, out.User)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "joao@example.com").Return(&entity.User{ID: 1, PasswordHash: "hash"}, nil)
	f.hasher.EXPECT().Check("nope", "hash").Return(false)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "joao@example.com", Password: "nope"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	f.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	f := createTestSessionService(t)
	ctx := context.Background()

	f.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := f.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	f.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestSessionService_Refresh(t *testing.T) {
	t.Run("valid token", func(t *testing.T) {
		f := createTestSessionService(t)
		ctx := context.Background()
		tokens := &service.TokenPair{AccessToken: "a2", RefreshToken: "r2"}

		f.tokenService.EXPECT().ValidateRefreshToken("r1").Return(&service.Claims{UserID: 1, Email: "old@example.com"}, nil)
		f.userRepo.EXPECT().FindByID(ctx, int64(1)).Return(&entity.User{ID: 1, Email: "joao@example.com"}, nil)
		f.tokenService.EXPECT().GenerateTokens(int64(1), "joao@example.com").Return(tokens, nil)

		got, err := f.service.Refresh(ctx, "r1")

		require.NoError(t, err)
		assert.Same(t, tokens, got)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestSessionService(t)

		f.tokenService.EXPECT().ValidateRefreshToken("bad").Return(nil, assert.AnError)

		_, err := f.service.Refresh(context.Background(), "bad")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
		f.assertNoTransaction(t)
	})

	t.Run("deleted account", func(t *testing.T) {
		f := createTestSessionService(t)
		ctx := context.Background()

		f.tokenService.EXPECT().ValidateRefreshToken("r1").Return(&service.Claims{UserID: 9}, nil)
		f.userRepo.EXPECT().FindByID(ctx, int64(9)).Return(nil, repository.ErrUserNotFound)

		_, err := f.service.Refresh(ctx, "r1")

		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}
