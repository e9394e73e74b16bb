// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"ayra/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
// Coordinate is optional for users.
type RegisterUserInput struct {
	Name       string
	Email      string
	Password   string
	Phone      string
	Coordinate *CoordinateInput
}

// UpdateUserInput carries a partial update. Nil fields are left unchanged.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Password *string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.User, error)
	GetProfile(ctx context.Context, userID int64) (*entity.User, error)

	// UpdateUser and DeleteUser act on the account identified by email, which
	// must be the account of actorID. Any other account yields ErrForbidden.
	UpdateUser(ctx context.Context, actorID int64, email string, input *UpdateUserInput) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID int64, email string) error
}
