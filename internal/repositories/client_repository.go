package repositories

import (
	"context"
	"gym_backend/internal/models"
)

// ClientRepository defines the interface for client-related database operations.
type ClientRepository interface {
	CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error)
	GetClientByID(ctx context.Context, id int64) (*models.Client, error)
	GetClientByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Client, error)
	GetClients(ctx context.Context) ([]models.Client, error)
	SearchClientsByName(ctx context.Context, fragment string) ([]models.Client, error)
	ClientExists(ctx context.Context, id int64) (bool, error)
	UpdateClientNotes(ctx context.Context, executor SQLExecutor, id int64, notes string) error
	DeleteClient(ctx context.Context, executor SQLExecutor, id int64) error
}

func clientTable() Table[models.Client] {
	return Table[models.Client]{
		Name:    "clients",
		Columns: []string{"full_name", "phone_number", "notes", "registered_at"},
		ToRow: func(c *models.Client) []any {
			return []any{c.FullName, c.PhoneNumber, c.Notes, c.RegisteredAt.UTC()}
		},
		FromRow: func(row Scanner) (models.Client, error) {
			var c models.Client
			err := row.Scan(&c.ID, &c.FullName, &c.PhoneNumber, &c.Notes, &c.RegisteredAt)
			c.RegisteredAt = c.RegisteredAt.UTC()
			return c, err
		},
	}
}

type clientRepository struct {
	clients *GenericRepository[models.Client]
}

// NewClientRepository creates a new instance of ClientRepository.
func NewClientRepository(db SQLExecutor) ClientRepository {
	return &clientRepository{clients: NewGenericRepository(db, clientTable())}
}

// CreateClient inserts a new client and sets its ID.
func (r *clientRepository) CreateClient(ctx context.Context, executor SQLExecutor, client *models.Client) (int64, error) {
	id, err := r.clients.Insert(ctx, executor, client)
	if err != nil {
		return 0, err
	}
	client.ID = id
	return id, nil
}

// GetClientByID retrieves a client by their ID.
func (r *clientRepository) GetClientByID(ctx context.Context, id int64) (*models.Client, error) {
	client, found, err := r.clients.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &client, nil
}

// GetClientByPhoneNumber retrieves a client by their exact phone number.
func (r *clientRepository) GetClientByPhoneNumber(ctx context.Context, phoneNumber string) (*models.Client, error) {
	client, found, err := r.clients.findOneWhere(ctx, "phone_number = ?", phoneNumber)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, ErrNotFound
	}
	return &client, nil
}

func (r *clientRepository) GetClients(ctx context.Context) ([]models.Client, error) {
	return r.clients.FetchAll(ctx)
}

func (r *clientRepository) SearchClientsByName(ctx context.Context, fragment string) ([]models.Client, error) {
	return r.clients.SearchByColumnSubstring(ctx, "full_name", fragment)
}

func (r *clientRepository) ClientExists(ctx context.Context, id int64) (bool, error) {
	return r.clients.Exists(ctx, id)
}

// UpdateClientNotes replaces the free-text notes of a client.
func (r *clientRepository) UpdateClientNotes(ctx context.Context, executor SQLExecutor, id int64, notes string) error {
	updated, err := r.clients.UpdateColumn(ctx, executor, id, "notes", notes)
	if err != nil {
		return err
	}
	if !updated {
		return ErrNotFound
	}
	return nil
}

// DeleteClient removes a client from the database.
func (r *clientRepository) DeleteClient(ctx context.Context, executor SQLExecutor, id int64) error {
	deleted, err := r.clients.DeleteByID(ctx, executor, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
