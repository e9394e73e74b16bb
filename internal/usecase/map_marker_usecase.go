package usecase

import (
	"context"

	"ayra/internal/domain/entity"
)

// ListQuery is the raw listing request shared by markers and alerts.
// Size 0 means the configured default; Sort is "field[,asc|desc]".
type ListQuery struct {
	Intensity string
	Page      int
	Size      int
	Sort      string
}

// MarkerInput defines the data required to create a marker.
type MarkerInput struct {
	Title       string
	Description string
	Intensity   string
	Radius      float64
	Coordinate  *CoordinateInput
}

// MarkerUpdateInput replaces the descriptive fields of a marker. The
// coordinate of a marker is fixed at creation.
type MarkerUpdateInput struct {
	Title       string
	Description string
	Intensity   string
	Radius      float64
}

// MarkerExport is an encoded spreadsheet of markers.
type MarkerExport struct {
	Content     []byte
	ContentType string
	Rows        int
}

// MapMarkerUsecase defines the map marker operations.
type MapMarkerUsecase interface {
	CreateMarker(ctx context.Context, input *MarkerInput) (*entity.MapMarker, error)
	GetMarker(ctx context.Context, id int64) (*entity.MapMarker, error)
	ListMarkers(ctx context.Context, query ListQuery) (*entity.Page[*entity.MapMarker], error)
	UpdateMarker(ctx context.Context, id int64, input *MarkerUpdateInput) (*entity.MapMarker, error)
	DeleteMarker(ctx context.Context, id int64) error

	// ExportMarkers renders the filtered, sorted listing ignoring page and size,
	// up to the configured row limit.
	ExportMarkers(ctx context.Context, query ListQuery) (*MarkerExport, error)

	// MarkerQRCode returns a PNG QR code of the marker's geo URI.
	MarkerQRCode(ctx context.Context, id int64) ([]byte, error)
}
