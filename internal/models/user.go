package models

import (
	"time"

	"github.com/google/uuid"
)

// Address is the postal address of a user
type Address struct {
	Street string `json:"street" db:"street"`
	City   string `json:"city" db:"city"`
	State  string `json:"state" db:"state"`
	Zip    string `json:"zip" db:"zip"`
}

// User represents a user record in the database
type User struct {
	UserID      uuid.UUID `json:"userId" db:"user_id"`           // Primary key
	Username    string    `json:"username" db:"username"`        // Display name, trimmed
	Email       string    `json:"email" db:"email"`              // Unique, lowercased email
	PhoneNumber string    `json:"phoneNumber" db:"phone_number"` // Contact phone
	Address     Address   `json:"address" db:"address"`          // Postal address
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`     // Creation timestamp
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`     // Last update timestamp
}
