package context

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEchoContext() echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBegin(t *testing.T) {
	c := newEchoContext()
	assert.Empty(t, RequestID(c))

	buf := &bytes.Buffer{}
	scope := Begin(c, "req-1", slog.New(slog.NewTextHandler(buf, nil)))

	assert.Equal(t, "req-1", RequestID(c))
	stored, ok := ScopeFrom(c.Request().Context())
	require.True(t, ok)
	assert.Same(t, scope, stored)

	LoggerFrom(c.Request().Context(), nil).Info("hello")
	assert.Contains(t, buf.String(), "request_id=req-1")
}

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background(), "req-2")

	assert.Equal(t, "req-2", RequestIDFrom(ctx))
	assert.Empty(t, RequestIDFrom(context.Background()))
}

func TestLoggerFrom(t *testing.T) {
	fallback := slog.New(slog.DiscardHandler)
	scoped := slog.New(slog.DiscardHandler).With("k", "v")

	assert.Same(t, fallback, LoggerFrom(context.Background(), fallback))
	assert.Same(t, fallback, LoggerFrom(WithRequestID(context.Background(), "r"), fallback))
	assert.Same(t, scoped, LoggerFrom(WithScope(context.Background(), &Scope{Logger: scoped}), fallback))
}

func TestSignIn(t *testing.T) {
	c := newEchoContext()
	buf := &bytes.Buffer{}
	Begin(c, "req-3", slog.New(slog.NewTextHandler(buf, nil)))

	_, ok := UserID(c)
	assert.False(t, ok)
	_, ok = UserEmail(c)
	assert.False(t, ok)

	SignIn(c, 7, "joao@example.com")

	id, ok := UserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(7), id)

	email, ok := UserEmail(c)
	assert.True(t, ok)
	assert.Equal(t, "joao@example.com", email)

	LoggerFrom(c.Request().Context(), nil).Info("signed in")
	assert.Contains(t, buf.String(), "user_id=7")
	assert.Contains(t, buf.String(), "request_id=req-3")
}

func TestSignIn_WithoutBegin(t *testing.T) {
	c := newEchoContext()

	SignIn(c, 9, "ana@example.com")

	id, ok := UserID(c)
	assert.True(t, ok)
	assert.Equal(t, int64(9), id)
	assert.Empty(t, RequestID(c))
}
