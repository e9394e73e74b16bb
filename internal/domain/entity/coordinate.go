// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// ProximityTolerance is the per-axis window, in degrees, inside which two
// coordinates are treated as the same place (about 11 m of latitude).
const ProximityTolerance = 0.0001

// boundSlack widens search bounds just enough to absorb binary rounding of
// decimal degree inputs, so points exactly one tolerance apart still match.
const boundSlack = 1e-9

// Coordinate is a stored geographic point. Many markers, alerts and users may
// reference the same row.
type Coordinate struct {
	ID        int64     // Generated identifier.
	Latitude  float64   // Degrees, -90..90.
	Longitude float64   // Degrees, -180..180.
	Date      time.Time // Calendar date the point was recorded.
}

// Point returns the coordinate as an orb.Point, which is ordered (lon, lat).
func (c *Coordinate) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}

// SearchBound returns the axis-aligned box of half-width tolerance centered on
// the coordinate. No great-circle correction is applied.
func (c *Coordinate) SearchBound(tolerance float64) orb.Bound {
	tolerance += boundSlack

	return orb.Bound{
		Min: orb.Point{c.Longitude - tolerance, c.Latitude - tolerance},
		Max: orb.Point{c.Longitude + tolerance, c.Latitude + tolerance},
	}
}
