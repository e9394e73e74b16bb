package usecase

import (
	"context"

	"ayra/internal/domain/entity"
	"ayra/internal/domain/service"
)

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens *service.TokenPair
	User   *entity.User
}

// SessionUsecase issues and renews the stateless JWT pair.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh exchanges a valid refresh token for a new pair, provided the
	// account still exists.
	Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error)
}
