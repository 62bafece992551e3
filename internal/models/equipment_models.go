package models

import "time"

// EquipmentStatus defines the type for equipment statuses
type EquipmentStatus string

const (
	EquipmentStatusOperational EquipmentStatus = "operational"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusRetired     EquipmentStatus = "retired"
)

// IsValidEquipmentStatus checks if the provided status string is a valid EquipmentStatus.
func IsValidEquipmentStatus(status string) bool {
	switch EquipmentStatus(status) {
	case EquipmentStatusOperational,
		EquipmentStatusMaintenance,
		EquipmentStatusRetired:
		return true
	default:
		return false
	}
}

// Equipment represents a machine or other piece of gym inventory.
type Equipment struct {
	ID          int64           `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Status      EquipmentStatus `json:"status" db:"status"`
	PurchasedAt time.Time       `json:"purchased_at" db:"purchased_at"`
	Notes       string          `json:"notes" db:"notes"`
}
