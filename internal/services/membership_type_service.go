package services

import (
	"context"
	"errors"
	"strings"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"
)

// --- Membership Type DTOs ---
type CreateMembershipTypeRequest struct {
	Name          string  `json:"name" binding:"required"`
	DurationValue int     `json:"duration_value" binding:"required"`
	DurationUnit  string  `json:"duration_unit" binding:"required"`
	Price         float64 `json:"price"`
}

type UpdateMembershipTypeRequest struct {
	Name          *string  `json:"name"`
	DurationValue *int     `json:"duration_value"`
	DurationUnit  *string  `json:"duration_unit"`
	Price         *float64 `json:"price"`
}

// --- MembershipTypeService Interface ---
type MembershipTypeService interface {
	CreateMembershipType(ctx context.Context, req CreateMembershipTypeRequest) (*models.MembershipType, error)
	GetMembershipTypeByID(ctx context.Context, typeID int64) (*models.MembershipType, error)
	GetMembershipTypes(ctx context.Context) ([]models.MembershipType, error)
	UpdateMembershipType(ctx context.Context, typeID int64, req UpdateMembershipTypeRequest) (*models.MembershipType, error)
	DeleteMembershipType(ctx context.Context, typeID int64) error
}

// --- membershipTypeService Implementation ---
type membershipTypeService struct {
	typeRepo repositories.MembershipTypeRepository
}

// NewMembershipTypeService creates a new instance of MembershipTypeService.
func NewMembershipTypeService(repo repositories.MembershipTypeRepository) MembershipTypeService {
	return &membershipTypeService{typeRepo: repo}
}

func validateMembershipType(name string, durationValue int, durationUnit string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return validationError("name cannot be empty")
	}
	if durationValue <= 0 {
		return validationError("duration value must be positive")
	}
	if !models.IsValidDurationUnit(durationUnit) {
		return validationError("duration unit must be one of days, weeks, months")
	}
	if price < 0 {
		return validationError("price cannot be negative")
	}
	return nil
}

// ensureNameFree rejects a name already used by a different type.
func (s *membershipTypeService) ensureNameFree(ctx context.Context, name string, typeID int64) error {
	existing, err := s.typeRepo.GetMembershipTypeByName(ctx, name)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return persistenceError("checking membership type name", err)
	}
	if existing.ID != typeID {
		return ErrMembershipTypeNameExists
	}
	return nil
}

func (s *membershipTypeService) CreateMembershipType(ctx context.Context, req CreateMembershipTypeRequest) (*models.MembershipType, error) {
	name := strings.TrimSpace(req.Name)
	if err := validateMembershipType(name, req.DurationValue, req.DurationUnit, req.Price); err != nil {
		return nil, err
	}
	if err := s.ensureNameFree(ctx, name, 0); err != nil {
		return nil, err
	}

	membershipType := &models.MembershipType{
		Name:          name,
		DurationValue: req.DurationValue,
		DurationUnit:  models.DurationUnit(req.DurationUnit),
		Price:         req.Price,
	}
	if _, err := s.typeRepo.CreateMembershipType(ctx, nil, membershipType); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrMembershipTypeNameExists
		}
		return nil, persistenceError("creating membership type", err)
	}
	return membershipType, nil
}

func (s *membershipTypeService) GetMembershipTypeByID(ctx context.Context, typeID int64) (*models.MembershipType, error) {
	membershipType, err := s.typeRepo.GetMembershipTypeByID(ctx, typeID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMembershipTypeNotFound
		}
		return nil, persistenceError("getting membership type", err)
	}
	return membershipType, nil
}

// GetMembershipTypes lists the catalog ordered by ascending price.
func (s *membershipTypeService) GetMembershipTypes(ctx context.Context) ([]models.MembershipType, error) {
	types, err := s.typeRepo.GetMembershipTypesByPrice(ctx)
	if err != nil {
		return nil, persistenceError("listing membership types", err)
	}
	return types, nil
}

// UpdateMembershipType applies the provided fields one column at a time.
// Existing memberships keep the dates computed when they were created.
func (s *membershipTypeService) UpdateMembershipType(ctx context.Context, typeID int64, req UpdateMembershipTypeRequest) (*models.MembershipType, error) {
	current, err := s.GetMembershipTypeByID(ctx, typeID)
	if err != nil {
		return nil, err
	}

	updated := *current
	if req.Name != nil {
		updated.Name = strings.TrimSpace(*req.Name)
	}
	if req.DurationValue != nil {
		updated.DurationValue = *req.DurationValue
	}
	if req.DurationUnit != nil {
		updated.DurationUnit = models.DurationUnit(*req.DurationUnit)
	}
	if req.Price != nil {
		updated.Price = *req.Price
	}
	if err := validateMembershipType(updated.Name, updated.DurationValue, string(updated.DurationUnit), updated.Price); err != nil {
		return nil, err
	}
	if updated.Name != current.Name {
		if err := s.ensureNameFree(ctx, updated.Name, typeID); err != nil {
			return nil, err
		}
	}

	changes := []struct {
		column  string
		value   any
		changed bool
	}{
		{"name", updated.Name, updated.Name != current.Name},
		{"duration_value", updated.DurationValue, updated.DurationValue != current.DurationValue},
		{"duration_unit", string(updated.DurationUnit), updated.DurationUnit != current.DurationUnit},
		{"price", updated.Price, updated.Price != current.Price},
	}
	for _, change := range changes {
		if !change.changed {
			continue
		}
		if err := s.typeRepo.UpdateMembershipTypeColumn(ctx, nil, typeID, change.column, change.value); err != nil {
			switch {
			case errors.Is(err, repositories.ErrNotFound):
				return nil, ErrMembershipTypeNotFound
			case errors.Is(err, repositories.ErrDuplicateKey):
				return nil, ErrMembershipTypeNameExists
			}
			return nil, persistenceError("updating membership type", err)
		}
	}
	return &updated, nil
}

// DeleteMembershipType removes a type that no membership references.
func (s *membershipTypeService) DeleteMembershipType(ctx context.Context, typeID int64) error {
	if _, err := s.GetMembershipTypeByID(ctx, typeID); err != nil {
		return err
	}

	inUse, err := s.typeRepo.IsMembershipTypeInUse(ctx, typeID)
	if err != nil {
		return persistenceError("checking membership type usage", err)
	}
	if inUse {
		return ErrMembershipTypeInUse
	}

	if err := s.typeRepo.DeleteMembershipType(ctx, nil, typeID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMembershipTypeNotFound
		}
		return persistenceError("deleting membership type", err)
	}
	return nil
}
