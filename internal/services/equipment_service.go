package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gym_backend/internal/models"
	"gym_backend/internal/repositories"
)

// --- Equipment DTOs ---
type CreateEquipmentRequest struct {
	Name        string  `json:"name" binding:"required"`
	Status      string  `json:"status"`       // defaults to operational
	PurchasedAt *string `json:"purchased_at"` // RFC3339, defaults to now
	Notes       string  `json:"notes"`
}

type UpdateEquipmentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// --- EquipmentService Interface ---
type EquipmentService interface {
	CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*models.Equipment, error)
	GetEquipmentByID(ctx context.Context, equipmentID int64) (*models.Equipment, error)
	GetEquipment(ctx context.Context, searchTerm *string) ([]models.Equipment, error)
	UpdateEquipmentStatus(ctx context.Context, equipmentID int64, status string) (*models.Equipment, error)
	DeleteEquipment(ctx context.Context, equipmentID int64) error
}

type equipmentService struct {
	equipmentRepo repositories.EquipmentRepository
	now           func() time.Time
}

// NewEquipmentService creates a new instance of EquipmentService.
func NewEquipmentService(repo repositories.EquipmentRepository, now func() time.Time) EquipmentService {
	if now == nil {
		now = time.Now
	}
	return &equipmentService{equipmentRepo: repo, now: now}
}

func (s *equipmentService) CreateEquipment(ctx context.Context, req CreateEquipmentRequest) (*models.Equipment, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, validationError("name cannot be empty")
	}

	status := models.EquipmentStatusOperational
	if req.Status != "" {
		if !models.IsValidEquipmentStatus(req.Status) {
			return nil, validationError("invalid equipment status %q", req.Status)
		}
		status = models.EquipmentStatus(req.Status)
	}

	purchasedAt := s.now().UTC()
	if req.PurchasedAt != nil && strings.TrimSpace(*req.PurchasedAt) != "" {
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(*req.PurchasedAt))
		if err != nil {
			return nil, validationError("purchased_at must be an RFC3339 timestamp")
		}
		purchasedAt = parsed.UTC()
	}

	equipment := &models.Equipment{Name: name, Status: status, PurchasedAt: purchasedAt, Notes: req.Notes}
	if _, err := s.equipmentRepo.CreateEquipment(ctx, nil, equipment); err != nil {
		return nil, persistenceError("creating equipment", err)
	}
	return equipment, nil
}

func (s *equipmentService) GetEquipmentByID(ctx context.Context, equipmentID int64) (*models.Equipment, error) {
	equipment, err := s.equipmentRepo.GetEquipmentByID(ctx, equipmentID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, persistenceError("getting equipment", err)
	}
	return equipment, nil
}

func (s *equipmentService) GetEquipment(ctx context.Context, searchTerm *string) ([]models.Equipment, error) {
	var equipment []models.Equipment
	var err error
	if searchTerm != nil {
		equipment, err = s.equipmentRepo.SearchEquipmentByName(ctx, *searchTerm)
	} else {
		equipment, err = s.equipmentRepo.GetEquipment(ctx)
	}
	if err != nil {
		return nil, persistenceError("listing equipment", err)
	}
	return equipment, nil
}

func (s *equipmentService) UpdateEquipmentStatus(ctx context.Context, equipmentID int64, status string) (*models.Equipment, error) {
	if !models.IsValidEquipmentStatus(status) {
		return nil, validationError("invalid equipment status %q", status)
	}
	if err := s.equipmentRepo.UpdateEquipmentStatus(ctx, nil, equipmentID, models.EquipmentStatus(status)); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEquipmentNotFound
		}
		return nil, persistenceError("updating equipment status", err)
	}
	return s.GetEquipmentByID(ctx, equipmentID)
}

func (s *equipmentService) DeleteEquipment(ctx context.Context, equipmentID int64) error {
	if err := s.equipmentRepo.DeleteEquipment(ctx, nil, equipmentID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEquipmentNotFound
		}
		return persistenceError("deleting equipment", err)
	}
	return nil
}
