package models

import "github.com/google/uuid"

// Driver holds the profile fields the dispatch engine filters on.
// Everything else about a driver (vehicle, documents, ratings) belongs
// to the user service.
type Driver struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Role       string    `json:"role" db:"role"`
	IsVerified bool      `json:"is_verified" db:"is_verified"`
	IsActive   bool      `json:"is_active" db:"is_active"`
}

// RoleDriver is the only role eligible for dispatch offers.
const RoleDriver = "driver"
