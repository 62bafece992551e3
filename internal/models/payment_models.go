package models

import "time"

// Payment is a charge recorded against a membership.
type Payment struct {
	ID           int64     `json:"id" db:"id"`
	MembershipID int64     `json:"membership_id" db:"membership_id"`
	Amount       float64   `json:"amount" db:"amount"`
	PaidAt       time.Time `json:"paid_at" db:"paid_at"`
}
