package testutil

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vytor/chessrank/internal/db"
)

// NewTestDB creates an in-memory session database with migrations
// applied, closed automatically when the test finishes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	database, err := db.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})
	return database.DB
}

// MustClose closes a resource and fails the test on error.
func MustClose(t *testing.T, closer interface{ Close() error }) {
	t.Helper()
	require.NoError(t, closer.Close())
}
