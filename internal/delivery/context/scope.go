// Package context carries what the transport knows about a request (its id,
// its logger and the signed-in user) down to the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

const (
	// HeaderXRequestID is read from clients and echoed on every response.
	HeaderXRequestID = "X-Request-Id"

	// MaxRequestIDLength caps client supplied request IDs.
	MaxRequestIDLength = 128
)

type scopeKey struct{}

// Scope describes the request being served. UserID is zero until the
// request authenticates.
type Scope struct {
	RequestID string
	Logger    *slog.Logger
	UserID    int64
	UserEmail string
}

// WithScope returns ctx carrying scope.
func WithScope(ctx context.Context, scope *Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope stored on ctx.
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	scope, ok := ctx.Value(scopeKey{}).(*Scope)

	return scope, ok && scope != nil
}

// WithRequestID returns ctx scoped to requestID, for callers outside HTTP.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return WithScope(ctx, &Scope{RequestID: requestID})
}

// RequestIDFrom returns the request ID on ctx, or "".
func RequestIDFrom(ctx context.Context) string {
	if scope, ok := ScopeFrom(ctx); ok {
		return scope.RequestID
	}

	return ""
}

// LoggerFrom returns the request logger on ctx, or fallback.
func LoggerFrom(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if scope, ok := ScopeFrom(ctx); ok && scope.Logger != nil {
		return scope.Logger
	}

	return fallback
}

// Begin opens the scope of the request served by c. The logger it stores is
// base annotated with the request ID.
func Begin(c echo.Context, requestID string, base *slog.Logger) *Scope {
	scope := &Scope{
		RequestID: requestID,
		Logger:    base.With(slog.String("request_id", requestID)),
	}
	req := c.Request()
	c.SetRequest(req.WithContext(WithScope(req.Context(), scope)))

	return scope
}

// RequestID returns the ID of the request served by c, or "" before Begin.
func RequestID(c echo.Context) string {
	return RequestIDFrom(c.Request().Context())
}

// SignIn records the authenticated user on the request scope, opening one
// when Begin never ran. Later log lines of the request carry user_id.
func SignIn(c echo.Context, userID int64, email string) {
	scope, ok := ScopeFrom(c.Request().Context())
	if !ok {
		scope = &Scope{}
		req := c.Request()
		c.SetRequest(req.WithContext(WithScope(req.Context(), scope)))
	}

	scope.UserID = userID
	scope.UserEmail = email
	if scope.Logger != nil {
		scope.Logger = scope.Logger.With(slog.Int64("user_id", userID))
	}
}

// UserID returns the authenticated user of the request served by c.
func UserID(c echo.Context) (int64, bool) {
	scope, ok := ScopeFrom(c.Request().Context())
	if !ok || scope.UserID == 0 {
		return 0, false
	}

	return scope.UserID, true
}

// UserEmail returns the email claim of the authenticated user.
func UserEmail(c echo.Context) (string, bool) {
	scope, ok := ScopeFrom(c.Request().Context())
	if !ok || scope.UserEmail == "" {
		return "", false
	}

	return scope.UserEmail, true
}
