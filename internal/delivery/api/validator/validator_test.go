package validator

import (
	"testing"

	"ayra/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	Latitude *float64 `json:"latitude" validate:"required,latitude"`
}

type request struct {
	Email  string  `json:"email" validate:"required,email"`
	Radius float64 `json:"radius" validate:"gt=0"`
	Point  *point  `json:"coordinate" validate:"required"`
	Page   int     `query:"page" validate:"min=0"`
}

func TestValidator_Validate(t *testing.T) {
	v := New()
	lat := 95.0

	t.Run("valid", func(t *testing.T) {
		ok := 10.0
		err := v.Validate(&request{Email: "a@b.co", Radius: 1, Point: &point{Latitude: &ok}})
		assert.NoError(t, err)
	})

	t.Run("reports fields by wire name", func(t *testing.T) {
		err := v.Validate(&request{Email: "nope", Radius: 0, Point: &point{Latitude: &lat}, Page: -1})
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))

		fields := map[string]string{}
		for _, f := range verr.Fields {
			fields[f.Field] = f.Tag
		}
		assert.Equal(t, map[string]string{
			"email":               "email",
			"radius":              "gt",
			"coordinate.latitude": "latitude",
			"page":                "min",
		}, fields)
		assert.Contains(t, err.Error(), "email: must be a valid email")
	})

	t.Run("required nested struct", func(t *testing.T) {
		err := v.Validate(&request{Email: "a@b.co", Radius: 1})

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "coordinate", verr.Fields[0].Field)
		assert.Equal(t, "required", verr.Fields[0].Tag)
	})
}
