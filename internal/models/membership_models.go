package models

import "time"

// DurationUnit is the unit in which a membership type's length is expressed.
type DurationUnit string

const (
	DurationDays   DurationUnit = "days"
	DurationWeeks  DurationUnit = "weeks"
	DurationMonths DurationUnit = "months"
)

// IsValidDurationUnit checks if the provided unit string is a valid DurationUnit.
func IsValidDurationUnit(unit string) bool {
	switch DurationUnit(unit) {
	case DurationDays, DurationWeeks, DurationMonths:
		return true
	default:
		return false
	}
}

// MembershipType is a catalog entry defining price and duration for a class of subscription.
type MembershipType struct {
	ID            int64        `json:"id" db:"id"`
	Name          string       `json:"name" db:"name"`
	DurationValue int          `json:"duration_value" db:"duration_value"`
	DurationUnit  DurationUnit `json:"duration_unit" db:"duration_unit"`
	Price         float64      `json:"price" db:"price"`
}

// ExpirationFrom returns the end of a validity period of this type that begins at start.
func (t MembershipType) ExpirationFrom(start time.Time) time.Time {
	return AddDuration(start, t.DurationValue, t.DurationUnit)
}

// AddDuration adds value units to start. Months are calendar months; when the
// target month is shorter than the start day the result is clamped to the
// last day of that month (Jan 31 + 1 month = Feb 28/29).
func AddDuration(start time.Time, value int, unit DurationUnit) time.Time {
	switch unit {
	case DurationDays:
		return start.AddDate(0, 0, value)
	case DurationWeeks:
		return start.AddDate(0, 0, 7*value)
	case DurationMonths:
		return addMonthsClamped(start, value)
	default:
		return start
	}
}

func addMonthsClamped(start time.Time, months int) time.Time {
	year, month, day := start.Date()
	firstOfTarget := time.Date(year, month+time.Month(months), 1,
		start.Hour(), start.Minute(), start.Second(), start.Nanosecond(), start.Location())
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if day > lastDay {
		day = lastDay
	}
	return firstOfTarget.AddDate(0, 0, day-1)
}

// MembershipStatus is derived from the validity window at read time and never persisted.
type MembershipStatus string

const (
	MembershipStatusActive       MembershipStatus = "active"
	MembershipStatusExpiringSoon MembershipStatus = "expiring_soon"
	MembershipStatusExpired      MembershipStatus = "expired"
)

// ExpiringSoonWindow is how close to expiration a membership must be to count as expiring soon.
const ExpiringSoonWindow = 7 * 24 * time.Hour

// IsValidMembershipStatus checks if the provided status string is a valid MembershipStatus.
func IsValidMembershipStatus(status string) bool {
	switch MembershipStatus(status) {
	case MembershipStatusActive, MembershipStatusExpiringSoon, MembershipStatusExpired:
		return true
	default:
		return false
	}
}

// IsCurrent reports whether a membership in this status still grants access.
func (s MembershipStatus) IsCurrent() bool {
	return s != MembershipStatusExpired
}

// StatusAt classifies a membership expiring at expiration as seen at now.
// Expired is checked first, then the expiring-soon window; a membership
// expiring exactly at now is still active.
func StatusAt(expiration, now time.Time) MembershipStatus {
	if now.After(expiration) {
		return MembershipStatusExpired
	}
	remaining := expiration.Sub(now)
	if remaining > 0 && remaining <= ExpiringSoonWindow {
		return MembershipStatusExpiringSoon
	}
	return MembershipStatusActive
}

// Membership is one validity period linking a client to a membership type.
// Rows are never mutated; a renewal creates a new one.
type Membership struct {
	ID               int64     `json:"id" db:"id"`
	ClientID         int64     `json:"client_id" db:"client_id"`
	MembershipTypeID int64     `json:"membership_type_id" db:"membership_type_id"`
	StartDate        time.Time `json:"start_date" db:"start_date"`
	ExpirationDate   time.Time `json:"expiration_date" db:"expiration_date"`
}

// StatusAt returns the membership's derived status at now.
func (m Membership) StatusAt(now time.Time) MembershipStatus {
	return StatusAt(m.ExpirationDate, now)
}

// MembershipWithStatus is a membership with its derived status attached for responses.
type MembershipWithStatus struct {
	Membership
	Status MembershipStatus `json:"status"`
}
