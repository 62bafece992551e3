package repositories

import (
	"context"
	"gym_backend/internal/models"
)

// MembershipRepository defines the interface for membership persistence.
// Memberships are insert-only apart from administrative deletion.
type MembershipRepository interface {
	CreateMembership(ctx context.Context, executor SQLExecutor, membership *models.Membership) (int64, error)
	GetMembershipByID(ctx context.Context, id int64) (*models.Membership, error)
	GetMemberships(ctx context.Context) ([]models.Membership, error)
	GetMembershipsByClient(ctx context.Context, clientID int64) ([]models.Membership, error)
	MembershipExists(ctx context.Context, id int64) (bool, error)
	DeleteMembership(ctx context.Context, executor SQLExecutor, id int64) error
}

func membershipTable() Table[models.Membership] {
	return Table[models.Membership]{
		Name:    "memberships",
		Columns: []string{"client_id", "membership_type_id", "start_date", "expiration_date"},
		ToRow: func(m *models.Membership) []any {
			return []any{m.ClientID, m.MembershipTypeID, m.StartDate.UTC(), m.ExpirationDate.UTC()}
		},
		FromRow: func(row Scanner) (models.Membership, error) {
			var m models.Membership
			err := row.Scan(&m.ID, &m.ClientID, &m.MembershipTypeID, &m.StartDate, &m.ExpirationDate)
			m.StartDate = m.StartDate.UTC()
			m.ExpirationDate = m.ExpirationDate.UTC()
			return m, err
		},
	}
}

type membershipRepository struct {
	memberships *GenericRepository[models.Membership]
}

// NewMembershipRepository creates a new instance of MembershipRepository.
func NewMembershipRepository(db SQLExecutor) MembershipRepository {
	return &membershipRepository{memberships: NewGenericRepository(db, membershipTable())}
}

func (r *membershipRepository) CreateMembership(ctx context.Context, executor SQLExecutor, membership *models.Membership) (int64, error) {
	id, err := r.memberships.Insert(ctx, executor, membership)
	if err != nil {
		return 0, err
	}
	membership.ID = id
	return id, nil
}

func (r *membershipRepository) GetMembershipByID(ctx context.Context, id int64) (*models.Membership, error) {
	membership, found, err := r.memberships.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &membership, nil
}

func (r *membershipRepository) GetMemberships(ctx context.Context) ([]models.Membership, error) {
	return r.memberships.FetchAll(ctx)
}

// GetMembershipsByClient returns a client's membership history, newest period first.
func (r *membershipRepository) GetMembershipsByClient(ctx context.Context, clientID int64) ([]models.Membership, error) {
	return r.memberships.findWhere(ctx, "client_id = ?", "start_date DESC, id DESC", clientID)
}

func (r *membershipRepository) MembershipExists(ctx context.Context, id int64) (bool, error) {
	return r.memberships.Exists(ctx, id)
}

func (r *membershipRepository) DeleteMembership(ctx context.Context, executor SQLExecutor, id int64) error {
	deleted, err := r.memberships.DeleteByID(ctx, executor, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
