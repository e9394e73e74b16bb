package entity

import "time"

// Known intensity labels. The set is open: any label is stored as given and
// filtering is an exact match.
const (
	IntensityLow    = "low"
	IntensityMedium = "medium"
	IntensityHigh   = "high"
)

// MapMarker is a flood or risk area drawn on the map around a coordinate.
type MapMarker struct {
	ID           int64
	Title        string
	Description  string
	Intensity    string
	Radius       float64 // Meters.
	CoordinateID int64
	Coordinate   *Coordinate
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
