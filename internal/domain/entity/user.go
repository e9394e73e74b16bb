package entity

import "time"

// User is an account of the mapping application. Email is the login identity.
type User struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Phone        string
	CoordinateID *int64      // Nil when the user did not share a location.
	Coordinate   *Coordinate // Populated on reads when CoordinateID is set.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
