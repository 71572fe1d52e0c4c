package user

import "time"

// RoleAdmin grants access to administrative routes. Role strings are
// compared case-sensitively.
const RoleAdmin = "admin"

type User struct {
	ID           string
	Username     string
	PasswordHash string
	Name         string
	Email        *string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
