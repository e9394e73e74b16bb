package service

import "ayra/internal/domain/entity"

// MarkerExporter renders markers into a downloadable spreadsheet.
type MarkerExporter interface {
	// ExportMarkers returns the encoded file.
	ExportMarkers(markers []*entity.MapMarker) ([]byte, error)

	// ContentType is the MIME type of the encoded file.
	ContentType() string
}
