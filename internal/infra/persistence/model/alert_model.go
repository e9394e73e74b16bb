package model

import "time"

// AlertModel mirrors the 'alerts' table. Deleting an alert cascades to its
// safety records; deleting a marker only clears the reference.
type AlertModel struct {
	ID            int64            `gorm:"primaryKey;autoIncrement"`
	Title         string           `gorm:"type:varchar(255);not null"`
	Description   string           `gorm:"type:text"`
	Intensity     string           `gorm:"type:varchar(32);not null;index"`
	AlertDatetime time.Time        `gorm:"type:timestamptz;not null"`
	Location      string           `gorm:"type:varchar(255)"`
	Radius        float64          `gorm:"type:double precision;not null"`
	CoordinateID  int64            `gorm:"not null;index"`
	Coordinate    *CoordinateModel `gorm:"foreignKey:CoordinateID;constraint:OnDelete:RESTRICT"`
	MapMarkerID   *int64           `gorm:"index"`
	MapMarker     *MapMarkerModel  `gorm:"foreignKey:MapMarkerID;constraint:OnDelete:SET NULL"`
	CreatedAt     time.Time

	SafeRoutes    []SafeRouteModel    `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE"`
	SafeLocations []SafeLocationModel `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE"`
	SafeTips      []SafeTipModel      `gorm:"foreignKey:AlertID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AlertModel) TableName() string {
	return "alerts"
}

// SafeRouteModel mirrors the 'safe_routes' table.
type SafeRouteModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	AlertID int64  `gorm:"not null;index"`
	Route   string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SafeRouteModel) TableName() string {
	return "safe_routes"
}

// SafeLocationModel mirrors the 'safe_locations' table.
type SafeLocationModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	AlertID  int64  `gorm:"not null;index"`
	Location string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SafeLocationModel) TableName() string {
	return "safe_locations"
}

// SafeTipModel mirrors the 'safe_tips' table.
type SafeTipModel struct {
	ID      int64  `gorm:"primaryKey;autoIncrement"`
	AlertID int64  `gorm:"not null;index"`
	Tip     string `gorm:"type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (SafeTipModel) TableName() string {
	return "safe_tips"
}

// All lists every model in dependency order for schema migration.
func All() []any {
	return []any{
		&CoordinateModel{},
		&MapMarkerModel{},
		&UserModel{},
		&AlertModel{},
		&SafeRouteModel{},
		&SafeLocationModel{},
		&SafeTipModel{},
	}
}
