package model

import (
	"time"
)

// Base contains common fields for all stored records
type Base struct {
	ID        string    `json:"id" db:"id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// MessageResponse is the body returned by delete confirmations and errors.
type MessageResponse struct {
	Message string `json:"message"`
}
