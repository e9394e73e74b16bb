package model

import "time"

// MapMarkerModel mirrors the 'map_markers' table.
type MapMarkerModel struct {
	ID           int64            `gorm:"primaryKey;autoIncrement"`
	Title        string           `gorm:"type:varchar(255);not null"`
	Description  string           `gorm:"type:text"`
	Intensity    string           `gorm:"type:varchar(32);not null;index"`
	Radius       float64          `gorm:"type:double precision;not null"`
	CoordinateID int64            `gorm:"not null;index"`
	Coordinate   *CoordinateModel `gorm:"foreignKey:CoordinateID;constraint:OnDelete:RESTRICT"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (MapMarkerModel) TableName() string {
	return "map_markers"
}
