package impl

import (
	"context"
	"log/slog"

	deliverycontext "ayra/internal/delivery/context"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/domain/service"
	"ayra/internal/errors"
	"ayra/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

func (srv *sessionService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	user, err := srv.loadUser(ctx, func(userRepo repository.UserRepository) (*entity.User, error) {
		return userRepo.FindByEmail(ctx, email)
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "login failed")
	}

	// Check password outside transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	tokens, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}
	srv.log(ctx).Debug("User logged in successfully", slog.Int64("user_id", user.ID))

	return &usecase.LoginOutput{Tokens: tokens, User: user}, nil
}

// Refresh issues a new pair for the account named by a valid refresh token.
// Tokens are stateless; an account deleted since issue invalidates them.
func (srv *sessionService) Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		srv.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
	}

	user, err := srv.loadUser(ctx, func(userRepo repository.UserRepository) (*entity.User, error) {
		return userRepo.FindByID(ctx, claims.UserID)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, errors.WithStack(domainerrors.ErrRefreshTokenInvalid)
		}

		return nil, errors.Wrap(err, "failed to load refresh token owner")
	}

	tokens, err := srv.tokenService.GenerateTokens(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return tokens, nil
}

// loadUser runs find in a transaction and reports a missing user as invalid credentials.
func (srv *sessionService) loadUser(ctx context.Context, find func(repository.UserRepository) (*entity.User, error)) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := find(repoFactory.UserRepo())
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrInvalidCredentials)
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
