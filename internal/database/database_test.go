package database

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenInMemoryAppliesSchema(t *testing.T) {
	db, err := OpenInMemory()
	require.NoError(t, err)
	defer db.Close()

	for _, table := range []string{"clients", "membership_types", "memberships", "payments", "equipment", "admins"} {
		var count int
		err := db.Get(&count, "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?", table)
		require.NoError(t, err)
		require.Equal(t, 1, count, "table %s missing", table)
	}

	// the schema is idempotent
	require.NoError(t, ApplySchema(db))
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	_, err := Open("mysql", "user@/gym", 1)
	require.Error(t, err)
}
