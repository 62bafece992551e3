package repositories

import (
	"context"
	"testing"
	"time"

	"gym_backend/internal/database"
	"gym_backend/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := database.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedClient(t *testing.T, repo *GenericRepository[models.Client], name, phone string) int64 {
	t.Helper()
	id, err := repo.Insert(context.Background(), nil, &models.Client{
		FullName:     name,
		PhoneNumber:  phone,
		RegisteredAt: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return id
}

func TestGenericRepositoryInsertAndFetch(t *testing.T) {
	ctx := context.Background()
	repo := NewGenericRepository(newTestDB(t), clientTable())
	assert.Equal(t, "clients", repo.TableName())

	all, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	first := seedClient(t, repo, "Alice Smith", "0123456789")
	second := seedClient(t, repo, "Bob Jones", "012345678901")
	assert.Greater(t, first, int64(0))
	assert.Greater(t, second, first)

	got, found, err := repo.FetchByID(ctx, first)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Alice Smith", got.FullName)
	assert.Equal(t, "0123456789", got.PhoneNumber)
	assert.True(t, got.RegisteredAt.Equal(time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)))

	_, found, err = repo.FetchByID(ctx, 999)
	require.NoError(t, err)
	assert.False(t, found)

	all, err = repo.FetchAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0].ID)
	assert.Equal(t, second, all[1].ID)
}

func TestGenericRepositoryInsertDuplicate(t *testing.T) {
	repo := NewGenericRepository(newTestDB(t), clientTable())
	seedClient(t, repo, "Alice Smith", "0123456789")

	_, err := repo.Insert(context.Background(), nil, &models.Client{
		FullName:     "Other Alice",
		PhoneNumber:  "0123456789",
		RegisteredAt: time.Now(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateKey)
}

func TestGenericRepositoryDeleteAndExists(t *testing.T) {
	ctx := context.Background()
	repo := NewGenericRepository(newTestDB(t), clientTable())
	id := seedClient(t, repo, "Alice Smith", "0123456789")

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.True(t, exists)

	deleted, err := repo.DeleteByID(ctx, nil, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(ctx, nil, id)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete must report nothing removed")

	exists, err = repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestGenericRepositoryUpdateColumn(t *testing.T) {
	ctx := context.Background()
	repo := NewGenericRepository(newTestDB(t), clientTable())
	id := seedClient(t, repo, "Alice Smith", "0123456789")

	updated, err := repo.UpdateColumn(ctx, nil, id, "notes", "prefers mornings")
	require.NoError(t, err)
	assert.True(t, updated)

	got, _, err := repo.FetchByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "prefers mornings", got.Notes)

	updated, err = repo.UpdateColumn(ctx, nil, 999, "notes", "x")
	require.NoError(t, err)
	assert.False(t, updated)

	_, err = repo.UpdateColumn(ctx, nil, id, "notes; DROP TABLE clients", "x")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestGenericRepositorySearchByColumnSubstring(t *testing.T) {
	ctx := context.Background()
	repo := NewGenericRepository(newTestDB(t), clientTable())
	seedClient(t, repo, "Zoe Adams", "0000000001")
	seedClient(t, repo, "Adam West", "0000000002")
	seedClient(t, repo, "Bob 100% Fit", "0000000003")
	seedClient(t, repo, "Carl", "0000000004")

	got, err := repo.SearchByColumnSubstring(ctx, "full_name", "Adam")
	require.NoError(t, err)
	require.Len(t, got, 2)
	// ordered by the searched column
	assert.Equal(t, "Adam West", got[0].FullName)
	assert.Equal(t, "Zoe Adams", got[1].FullName)

	got, err = repo.SearchByColumnSubstring(ctx, "full_name", "%")
	require.NoError(t, err)
	require.Len(t, got, 1, "percent must match literally")
	assert.Equal(t, "Bob 100% Fit", got[0].FullName)

	got, err = repo.SearchByColumnSubstring(ctx, "full_name", "nobody")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, err = repo.SearchByColumnSubstring(ctx, "password", "x")
	assert.ErrorIs(t, err, ErrUnknownColumn)
}

func TestGenericRepositoryInsertInTransaction(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	repo := NewGenericRepository(db, clientTable())

	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	_, err = repo.Insert(ctx, tx, &models.Client{FullName: "Rolled Back", PhoneNumber: "0123456789", RegisteredAt: time.Now()})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	all, err := repo.FetchAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
