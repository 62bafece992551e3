package repositories

import (
	"context"
	"gym_backend/internal/models"
)

// EquipmentRepository defines the interface for gym equipment inventory.
type EquipmentRepository interface {
	CreateEquipment(ctx context.Context, executor SQLExecutor, equipment *models.Equipment) (int64, error)
	GetEquipmentByID(ctx context.Context, id int64) (*models.Equipment, error)
	GetEquipment(ctx context.Context) ([]models.Equipment, error)
	SearchEquipmentByName(ctx context.Context, fragment string) ([]models.Equipment, error)
	UpdateEquipmentStatus(ctx context.Context, executor SQLExecutor, id int64, status models.EquipmentStatus) error
	DeleteEquipment(ctx context.Context, executor SQLExecutor, id int64) error
}

func equipmentTable() Table[models.Equipment] {
	return Table[models.Equipment]{
		Name:    "equipment",
		Columns: []string{"name", "status", "purchased_at", "notes"},
		ToRow: func(e *models.Equipment) []any {
			return []any{e.Name, string(e.Status), e.PurchasedAt.UTC(), e.Notes}
		},
		FromRow: func(row Scanner) (models.Equipment, error) {
			var e models.Equipment
			var status string
			err := row.Scan(&e.ID, &e.Name, &status, &e.PurchasedAt, &e.Notes)
			e.Status = models.EquipmentStatus(status)
			e.PurchasedAt = e.PurchasedAt.UTC()
			return e, err
		},
	}
}

type equipmentRepository struct {
	equipment *GenericRepository[models.Equipment]
}

// NewEquipmentRepository creates a new instance of EquipmentRepository.
func NewEquipmentRepository(db SQLExecutor) EquipmentRepository {
	return &equipmentRepository{equipment: NewGenericRepository(db, equipmentTable())}
}

func (r *equipmentRepository) CreateEquipment(ctx context.Context, executor SQLExecutor, equipment *models.Equipment) (int64, error) {
	id, err := r.equipment.Insert(ctx, executor, equipment)
	if err != nil {
		return 0, err
	}
	equipment.ID = id
	return id, nil
}

func (r *equipmentRepository) GetEquipmentByID(ctx context.Context, id int64) (*models.Equipment, error) {
	equipment, found, err := r.equipment.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &equipment, nil
}

func (r *equipmentRepository) GetEquipment(ctx context.Context) ([]models.Equipment, error) {
	return r.equipment.FetchAll(ctx)
}

func (r *equipmentRepository) SearchEquipmentByName(ctx context.Context, fragment string) ([]models.Equipment, error) {
	return r.equipment.SearchByColumnSubstring(ctx, "name", fragment)
}

func (r *equipmentRepository) UpdateEquipmentStatus(ctx context.Context, executor SQLExecutor, id int64, status models.EquipmentStatus) error {
	updated, err := r.equipment.UpdateColumn(ctx, executor, id, "status", string(status))
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (r *equipmentRepository) DeleteEquipment(ctx context.Context, executor SQLExecutor, id int64) error {
	deleted, err := r.equipment.DeleteByID(ctx, executor, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
