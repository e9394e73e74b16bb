package response

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ayra/internal/delivery/context"
	"ayra/internal/domain/entity"
	domainerrors "ayra/internal/domain/errors"
	"ayra/internal/errors"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.Begin(c, "req-1", slog.New(slog.DiscardHandler))

	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccessAndCreated(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Created(c, "/map-marker/3", map[string]int{"id": 3}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/map-marker/3", rec.Header().Get(echo.HeaderLocation))
	assert.JSONEq(t, `{"data":{"id":3},"meta":{"request_id":"req-1"}}`, rec.Body.String())
}

func TestError_HidesDetails(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		wantDetails bool
	}{
		{name: "bad request keeps details", status: http.StatusBadRequest, wantDetails: true},
		{name: "unauthorized drops details", status: http.StatusUnauthorized},
		{name: "forbidden drops details", status: http.StatusForbidden},
		{name: "server error drops details", status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, Error(c, tt.status, "CODE", "message", "detail"))

			body := decodeError(t, rec)
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "CODE", body.Error.Code)
			assert.Equal(t, "req-1", body.Meta.RequestID)
			if tt.wantDetails {
				assert.Equal(t, "detail", body.Error.Details)
			} else {
				assert.Nil(t, body.Error.Details)
			}
		})
	}
}

func TestHandleAppError(t *testing.T) {
	t.Run("renders wrapped app error with details", func(t *testing.T) {
		c, rec := newContext()
		err := errors.Wrap(domainerrors.ErrCoordinateNotFound.WithDetails("id 9"), "resolve")

		require.NoError(t, HandleAppError(c, err))

		body := decodeError(t, rec)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "COORDINATE_NOT_FOUND", body.Error.Code)
		assert.Equal(t, "id 9", body.Error.Details)
	})

	t.Run("returns other errors", func(t *testing.T) {
		c, _ := newContext()
		cause := errors.New("boom")

		err := HandleAppError(c, cause)

		require.Error(t, err)
		assert.True(t, errors.Is(err, cause))
	})
}

func TestNewPageResponse(t *testing.T) {
	page := entity.NewPage([]*entity.MapMarker{{ID: 1}, {ID: 2}}, entity.Pageable{Page: 0, Size: 2}, 5)

	got := NewPageResponse(page, func(m *entity.MapMarker) int64 { return m.ID })

	assert.Equal(t, []int64{1, 2}, got.Content)
	assert.Equal(t, int64(5), got.TotalElements)
	assert.Equal(t, 3, got.TotalPages)
	assert.Equal(t, 2, got.Size)
}
