// Package export renders marker listings as spreadsheets.
package export

import (
	"ayra/internal/domain/entity"
	"ayra/internal/domain/service"
	"ayra/internal/errors"

	"github.com/xuri/excelize/v2"
)

const (
	sheetName       = "Markers"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	dateLayout      = "2006-01-02"
)

var markerHeader = []any{"ID", "Title", "Description", "Intensity", "Radius (m)", "Latitude", "Longitude", "Coordinate Date", "Created At"}

var columnWidths = []float64{8, 30, 45, 12, 12, 14, 14, 16, 22}

type xlsxExporter struct{}

// NewXLSXExporter returns a MarkerExporter producing Excel workbooks.
func NewXLSXExporter() service.MarkerExporter {
	return xlsxExporter{}
}

func (xlsxExporter) ContentType() string {
	return xlsxContentType
}

// ExportMarkers writes one header row and one row per marker. Markers without
// a loaded coordinate leave the location columns empty.
func (xlsxExporter) ExportMarkers(markers []*entity.MapMarker) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, errors.Wrap(err, "failed to rename sheet")
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create header style")
	}

	if err := f.SetSheetRow(sheetName, "A1", &markerHeader); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}
	lastHeaderCell, err := excelize.CoordinatesToCellName(len(markerHeader), 1)
	if err != nil {
		return nil, errors.Wrap(err, "failed to convert coordinates")
	}
	if err := f.SetCellStyle(sheetName, "A1", lastHeaderCell, headerStyle); err != nil {
		return nil, errors.Wrap(err, "failed to set header style")
	}

	for i, width := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert column")
		}
		if err := f.SetColWidth(sheetName, col, col, width); err != nil {
			return nil, errors.Wrap(err, "failed to set column width")
		}
	}

	for i, marker := range markers {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Wrap(err, "failed to convert coordinates")
		}
		row := markerRow(marker)
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, errors.Wrapf(err, "failed to write marker %d", marker.ID)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}

	return buf.Bytes(), nil
}

func markerRow(marker *entity.MapMarker) []any {
	row := []any{marker.ID, marker.Title, marker.Description, marker.Intensity, marker.Radius, "", "", "", ""}
	if c := marker.Coordinate; c != nil {
		row[5] = c.Latitude
		row[6] = c.Longitude
		if !c.Date.IsZero() {
			row[7] = c.Date.Format(dateLayout)
		}
	}
	if !marker.CreatedAt.IsZero() {
		row[8] = marker.CreatedAt.UTC().Format("2006-01-02 15:04:05")
	}

	return row
}
