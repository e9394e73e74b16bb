package entity

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestCoordinate_Point(t *testing.T) {
	c := &Coordinate{Latitude: -23.5505, Longitude: -46.6333}

	assert.Equal(t, orb.Point{-46.6333, -23.5505}, c.Point())
}

func TestCoordinate_SearchBound(t *testing.T) {
	seed := &Coordinate{Latitude: -23.5505, Longitude: -46.6333}

	tests := []struct {
		name      string
		candidate *Coordinate
		want      bool
	}{
		{name: "same point", candidate: &Coordinate{Latitude: -23.5505, Longitude: -46.6333}, want: true},
		{name: "one tolerance west", candidate: &Coordinate{Latitude: -23.5505, Longitude: -46.6334}, want: true},
		{name: "one tolerance north", candidate: &Coordinate{Latitude: -23.5504, Longitude: -46.6333}, want: true},
		{name: "diagonal corner", candidate: &Coordinate{Latitude: -23.5506, Longitude: -46.6332}, want: true},
		{name: "just outside", candidate: &Coordinate{Latitude: -23.5505, Longitude: -46.63345}, want: false},
		{name: "far away", candidate: &Coordinate{Latitude: -23.9999, Longitude: -46.9999}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bound := tt.candidate.SearchBound(ProximityTolerance)
			assert.Equal(t, tt.want, bound.Contains(seed.Point()))
		})
	}
}

func TestNewPage(t *testing.T) {
	page := NewPage([]int{1, 2}, Pageable{Page: 1, Size: 2}, 5)

	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, int64(5), page.TotalElements)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Size)
	assert.Equal(t, 2, Pageable{Page: 1, Size: 2}.Offset())

	empty := NewPage[int](nil, Pageable{Size: 10}, 0)
	assert.Equal(t, 0, empty.TotalPages)
}
