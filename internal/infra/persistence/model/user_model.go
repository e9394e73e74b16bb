package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64            `gorm:"primaryKey;autoIncrement"`
	Name         string           `gorm:"type:varchar(100);not null"`
	Email        string           `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string           `gorm:"column:password;type:varchar(255);not null"`
	Phone        string           `gorm:"type:varchar(32)"`
	CoordinateID *int64           `gorm:"index"`
	Coordinate   *CoordinateModel `gorm:"foreignKey:CoordinateID;constraint:OnDelete:SET NULL"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
