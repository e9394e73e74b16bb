// Package model holds the GORM persistence models. They mirror the database
// tables and never leave the infrastructure layer.
package model

import "time"

// CoordinateModel mirrors the 'coordinates' table. There is deliberately no
// unique index on (latitude, longitude); sameness is decided on write.
type CoordinateModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Latitude  float64   `gorm:"type:double precision;not null;index:idx_coordinates_lat_lon,priority:1"`
	Longitude float64   `gorm:"type:double precision;not null;index:idx_coordinates_lat_lon,priority:2"`
	Date      time.Time `gorm:"type:date;not null"`
}

// TableName explicitly sets the table name for GORM.
func (CoordinateModel) TableName() string {
	return "coordinates"
}
