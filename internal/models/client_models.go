package models

import "time"

// Client represents a registered member of the gym.
type Client struct {
	ID           int64     `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	Notes        string    `json:"notes" db:"notes"`
	RegisteredAt time.Time `json:"registered_at" db:"registered_at"`
}
