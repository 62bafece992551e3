package repositories

import (
	"context"
	"gym_backend/internal/models"
)

// AuthRepository defines the interface for admin account storage.
type AuthRepository interface {
	CreateAdmin(ctx context.Context, executor SQLExecutor, admin *models.Admin) (int64, error)
	FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	FindAdminByID(ctx context.Context, id int64) (*models.Admin, error)
}

func adminTable() Table[models.Admin] {
	return Table[models.Admin]{
		Name:    "admins",
		Columns: []string{"username", "password_hash", "created_at"},
		ToRow: func(a *models.Admin) []any {
			return []any{a.Username, a.PasswordHash, a.CreatedAt.UTC()}
		},
		FromRow: func(row Scanner) (models.Admin, error) {
			var a models.Admin
			err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
			a.CreatedAt = a.CreatedAt.UTC()
			return a, err
		},
	}
}

// authRepository implements the AuthRepository interface.
type authRepository struct {
	admins *GenericRepository[models.Admin]
}

// NewAuthRepository creates a new instance of AuthRepository.
func NewAuthRepository(db SQLExecutor) AuthRepository {
	return &authRepository{admins: NewGenericRepository(db, adminTable())}
}

// CreateAdmin inserts an admin whose PasswordHash is already set.
// A taken username yields ErrDuplicateKey.
func (r *authRepository) CreateAdmin(ctx context.Context, executor SQLExecutor, admin *models.Admin) (int64, error) {
	id, err := r.admins.Insert(ctx, executor, admin)
	if err != nil {
		return 0, err
	}
	admin.ID = id
	return id, nil
}

// FindAdminByUsername retrieves an admin together with the stored password hash.
func (r *authRepository) FindAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	admin, found, err := r.admins.findOneWhere(ctx, "username = ?", username)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &admin, nil
}

func (r *authRepository) FindAdminByID(ctx context.Context, id int64) (*models.Admin, error) {
	admin, found, err := r.admins.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &admin, nil
}
