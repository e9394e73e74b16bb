package auth

import (
	"testing"
	"time"

	"ayra/config"
	"ayra/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  10 * time.Minute,
			RefreshTokenTTL: time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Now())
	svc, err := NewJWTService(newTestJWTConfig(), clock)
	require.NoError(t, err)

	pair, err := svc.GenerateTokens(42, "joao@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, int64(600), pair.ExpiresIn)

	accessClaims, err := svc.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), accessClaims.UserID)
	assert.Equal(t, "joao@example.com", accessClaims.Email)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.Equal(t, "42", accessClaims.Subject)

	refreshClaims, err := svc.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsWrongTokenKind(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), clockwork.NewFakeClockAt(time.Now()))
	require.NoError(t, err)

	pair, err := svc.GenerateTokens(1, "maria@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(pair.RefreshToken)
	assert.Error(t, err)

	_, err = svc.ValidateRefreshToken(pair.AccessToken)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Now())
	svc, err := NewJWTService(newTestJWTConfig(), clock)
	require.NoError(t, err)

	pair, err := svc.GenerateTokens(1, "maria@example.com")
	require.NoError(t, err)

	clock.Advance(11 * time.Minute)

	_, err = svc.ValidateAccessToken(pair.AccessToken)
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)

	_, err = svc.ValidateRefreshToken(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), nil)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken("invalid.token.string")
	assert.Error(t, err)

	_, err = svc.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestJWTService_RejectsForeignAlgorithm(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(), nil)
	require.NoError(t, err)

	claims := &service.Claims{
		UserID: 1,
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{}, nil)
	assert.Error(t, err)
}
