package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a service wraps exactly one of these,
// so callers map failures with errors.Is instead of matching messages.
var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrPersistence = errors.New("persistence failure")
)

// --- Specific service errors ---
var (
	ErrClientNotFound         = fmt.Errorf("client %w", ErrNotFound)
	ErrMembershipNotFound     = fmt.Errorf("membership %w", ErrNotFound)
	ErrMembershipTypeNotFound = fmt.Errorf("membership type %w", ErrNotFound)
	ErrPaymentNotFound        = fmt.Errorf("payment %w", ErrNotFound)
	ErrEquipmentNotFound      = fmt.Errorf("equipment %w", ErrNotFound)

	ErrPhoneNumberExists         = fmt.Errorf("%w: phone number already exists", ErrConflict)
	ErrMembershipTypeNameExists  = fmt.Errorf("%w: membership type name already exists", ErrConflict)
	ErrClientHasActiveMembership = fmt.Errorf("%w: client has an active membership", ErrConflict)
	ErrMembershipTypeInUse       = fmt.Errorf("%w: membership type is referenced by memberships", ErrConflict)
	ErrUsernameExists            = fmt.Errorf("%w: username already exists", ErrConflict)

	ErrInvalidCredentials = errors.New("invalid username or password")
)

func validationError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func persistenceError(action string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, action, err)
}
