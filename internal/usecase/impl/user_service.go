// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "ayra/internal/delivery/context"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/domain/repository"
	"ayra/internal/domain/service"
	"ayra/internal/errors"
	"ayra/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	resolver  usecase.CoordinateResolver
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Resolver  usecase.CoordinateResolver
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		resolver:  params.Resolver,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.LoggerFrom(ctx, srv.logger)
}

// RegisterUser hashes the password, resolves the optional coordinate and
// inserts the user in one transaction.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.User, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	// Hash outside the transaction (bcrypt is CPU-bound).
	passwordHash, err := srv.hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: passwordHash,
		Phone:        strings.TrimSpace(input.Phone),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := ensureEmailAvailable(ctx, userRepo, email); err != nil {
			return err
		}

		if input.Coordinate != nil {
			coordinate, err := srv.resolver.Resolve(ctx, repoFactory.CoordinateRepo(), input.Coordinate)
			if err != nil {
				return errors.Wrap(err, "failed to resolve coordinate")
			}
			user.CoordinateID = &coordinate.ID
			user.Coordinate = coordinate
		}

		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("user_id", user.ID))

	return user, nil
}

func (srv *userService) GetProfile(ctx context.Context, userID int64) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findUser(ctx, repoFactory.UserRepo(), userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return user, nil
}

// UpdateUser applies the non-nil fields of input to the actor's own account.
func (srv *userService) UpdateUser(ctx context.Context, actorID int64, email string, input *usecase.UpdateUserInput) (*entity.User, error) {
	var passwordHash string
	if input.Password != nil {
		hash, err := srv.hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = hash
	}

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		actor, err := authorizeSelf(ctx, userRepo, actorID, email)
		if err != nil {
			return err
		}

		if input.Name != nil {
			actor.Name = strings.TrimSpace(*input.Name)
		}
		if input.Phone != nil {
			actor.Phone = strings.TrimSpace(*input.Phone)
		}
		if input.Email != nil {
			newEmail := normalizeEmail(*input.Email)
			if newEmail != actor.Email {
				if err := ensureEmailAvailable(ctx, userRepo, newEmail); err != nil {
					return err
				}
				actor.Email = newEmail
			}
		}
		if passwordHash != "" {
			actor.PasswordHash = passwordHash
		}

		if err := userRepo.Update(ctx, actor); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to update user")
		}
		user = actor

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User update failed", slog.Int64("actor_id", actorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user update transaction")
	}

	srv.log(ctx).Info("User updated", slog.Int64("user_id", user.ID))

	return user, nil
}

func (srv *userService) DeleteUser(ctx context.Context, actorID int64, email string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		actor, err := authorizeSelf(ctx, userRepo, actorID, email)
		if err != nil {
			return err
		}

		if err := userRepo.Delete(ctx, actor.ID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.WithStack(domainerrors.ErrUserNotFound)
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("User deletion failed", slog.Int64("actor_id", actorID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute user deletion transaction")
	}

	srv.log(ctx).Info("User deleted", slog.Int64("user_id", actorID))

	return nil
}

func (srv *userService) hashPassword(password string) (string, error) {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return hash, nil
}

// authorizeSelf loads the actor and checks that email names the actor's own account.
func authorizeSelf(ctx context.Context, userRepo repository.UserRepository, actorID int64, email string) (*entity.User, error) {
	actor, err := findUser(ctx, userRepo, actorID)
	if err != nil {
		return nil, err
	}
	if actor.Email != normalizeEmail(email) {
		return nil, domainerrors.ErrForbidden.WrapMessage("users may only change their own account")
	}

	return actor, nil
}

func ensureEmailAvailable(ctx context.Context, userRepo repository.UserRepository, email string) error {
	_, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		return errors.WithStack(domainerrors.ErrUserAlreadyExists)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(err, "failed to check email")
	}

	return nil
}

func findUser(ctx context.Context, userRepo repository.UserRepository, id int64) (*entity.User, error) {
	user, err := userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	return user, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
