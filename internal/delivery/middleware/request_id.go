package middleware

import (
	"log/slog"

	deliverycontext "ayra/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware opens the request scope: an ID taken from the client or
// minted here, and a logger annotated with it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process echoes the request ID on the response before calling next.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := clientRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}

		deliverycontext.Begin(c, requestID, m.logger)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		return next(c)
	}
}

// clientRequestID returns header when it is a usable request ID, or "".
func clientRequestID(header string) string {
	if len(header) > deliverycontext.MaxRequestIDLength {
		return ""
	}
	for _, r := range header {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}

	return header
}
