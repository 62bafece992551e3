package repositories

import (
	"context"
	"gym_backend/internal/models"
)

// MembershipTypeRepository defines the interface for membership type catalog operations.
type MembershipTypeRepository interface {
	CreateMembershipType(ctx context.Context, executor SQLExecutor, membershipType *models.MembershipType) (int64, error)
	GetMembershipTypeByID(ctx context.Context, id int64) (*models.MembershipType, error)
	GetMembershipTypeByName(ctx context.Context, name string) (*models.MembershipType, error)
	GetMembershipTypesByPrice(ctx context.Context) ([]models.MembershipType, error)
	UpdateMembershipTypeColumn(ctx context.Context, executor SQLExecutor, id int64, column string, value any) error
	DeleteMembershipType(ctx context.Context, executor SQLExecutor, id int64) error
	IsMembershipTypeInUse(ctx context.Context, id int64) (bool, error)
}

func membershipTypeTable() Table[models.MembershipType] {
	return Table[models.MembershipType]{
		Name:    "membership_types",
		Columns: []string{"name", "duration_value", "duration_unit", "price"},
		ToRow: func(t *models.MembershipType) []any {
			return []any{t.Name, t.DurationValue, string(t.DurationUnit), t.Price}
		},
		FromRow: func(row Scanner) (models.MembershipType, error) {
			var t models.MembershipType
			var unit string
			err := row.Scan(&t.ID, &t.Name, &t.DurationValue, &unit, &t.Price)
			t.DurationUnit = models.DurationUnit(unit)
			return t, err
		},
	}
}

type membershipTypeRepository struct {
	types       *GenericRepository[models.MembershipType]
	memberships *GenericRepository[models.Membership]
}

// NewMembershipTypeRepository creates a new instance of MembershipTypeRepository.
func NewMembershipTypeRepository(db SQLExecutor) MembershipTypeRepository {
	return &membershipTypeRepository{
		types:       NewGenericRepository(db, membershipTypeTable()),
		memberships: NewGenericRepository(db, membershipTable()),
	}
}

func (r *membershipTypeRepository) CreateMembershipType(ctx context.Context, executor SQLExecutor, membershipType *models.MembershipType) (int64, error) {
	id, err := r.types.Insert(ctx, executor, membershipType)
	if err != nil {
		return 0, err
	}
	membershipType.ID = id
	return id, nil
}

func (r *membershipTypeRepository) GetMembershipTypeByID(ctx context.Context, id int64) (*models.MembershipType, error) {
	membershipType, found, err := r.types.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &membershipType, nil
}

func (r *membershipTypeRepository) GetMembershipTypeByName(ctx context.Context, name string) (*models.MembershipType, error) {
	membershipType, found, err := r.types.findOneWhere(ctx, "name = ?", name)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &membershipType, nil
}

// GetMembershipTypesByPrice lists the catalog from cheapest to most expensive.
func (r *membershipTypeRepository) GetMembershipTypesByPrice(ctx context.Context) ([]models.MembershipType, error) {
	return r.types.findWhere(ctx, "", "price ASC, id ASC")
}

func (r *membershipTypeRepository) UpdateMembershipTypeColumn(ctx context.Context, executor SQLExecutor, id int64, column string, value any) error {
	updated, err := r.types.UpdateColumn(ctx, executor, id, column, value)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

func (r *membershipTypeRepository) DeleteMembershipType(ctx context.Context, executor SQLExecutor, id int64) error {
	deleted, err := r.types.DeleteByID(ctx, executor, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// IsMembershipTypeInUse reports whether any membership references the type.
func (r *membershipTypeRepository) IsMembershipTypeInUse(ctx context.Context, id int64) (bool, error) {
	return r.memberships.existsWhere(ctx, "membership_type_id = ?", id)
}
