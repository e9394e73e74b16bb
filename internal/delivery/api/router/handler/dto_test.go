package handler

import (
	"testing"
	"time"

	"ayra/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateRequest_ToInput(t *testing.T) {
	lat, lon := -23.5505, -46.6334
	id := int64(3)

	tests := []struct {
		name     string
		req      *CoordinateRequest
		wantNil  bool
		wantID   *int64
		wantDate *time.Time
	}{
		{name: "nil request", wantNil: true},
		{
			name: "point without date",
			req:  &CoordinateRequest{Latitude: &lat, Longitude: &lon},
		},
		{
			name:     "point with date",
			req:      &CoordinateRequest{Latitude: &lat, Longitude: &lon, Date: "2024-05-01"},
			wantDate: func() *time.Time { d := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC); return &d }(),
		},
		{
			name:   "id only",
			req:    &CoordinateRequest{ID: &id},
			wantID: &id,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.req.toInput()
			if tt.wantNil {
				assert.Nil(t, got)

				return
			}

			require.NotNil(t, got)
			assert.Equal(t, tt.wantID, got.ID)
			assert.Equal(t, tt.wantDate, got.Date)
			if tt.req.Latitude != nil {
				assert.InDelta(t, lat, got.Latitude, 0)
				assert.InDelta(t, lon, got.Longitude, 0)
			}
		})
	}
}

func TestNewAlertResponse_NilCollections(t *testing.T) {
	got := newAlertResponse(&entity.Alert{ID: 1})

	assert.NotNil(t, got.SafeRoutes)
	assert.NotNil(t, got.SafeLocations)
	assert.NotNil(t, got.SafeTips)
	assert.Nil(t, got.Coordinate)
}

func TestNewUserResponse_OmitsPassword(t *testing.T) {
	got := newUserResponse(&entity.User{
		ID:           2,
		Email:        "maria@example.com",
		PasswordHash: "secret",
		Coordinate:   &entity.Coordinate{ID: 9, Date: time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC)},
	})

	assert.Equal(t, "2024-05-02", got.Coordinate.Date)
	assert.Equal(t, "maria@example.com", got.Email)
}
