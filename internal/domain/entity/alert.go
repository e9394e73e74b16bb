package entity

import "time"

// Alert is a dated warning about a flood event at a coordinate, optionally
// attached to the map marker that outlines the affected area.
type Alert struct {
	ID            int64
	Title         string
	Description   string
	Intensity     string
	AlertDatetime time.Time
	Location      string // Human-readable place name.
	Radius        float64
	CoordinateID  int64
	Coordinate    *Coordinate
	MapMarkerID   *int64
	SafeRoutes    []*SafeRoute
	SafeLocations []*SafeLocation
	SafeTips      []*SafeTip
	CreatedAt     time.Time
}

// SafeRoute is a recommended path away from an alert area.
type SafeRoute struct {
	ID      int64
	AlertID int64
	Route   string
}

// SafeLocation is a shelter or safe place related to an alert.
type SafeLocation struct {
	ID       int64
	AlertID  int64
	Location string
}

// SafeTip is a safety recommendation for people near an alert.
type SafeTip struct {
	ID      int64
	AlertID int64
	Tip     string
}
