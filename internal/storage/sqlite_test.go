package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suvadipmandal/tally/internal/service"
)

// Helper function to create a migrated test store.
func createTestStore(t *testing.T) (*SQLiteStore, func()) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func TestSQLiteStoreReadAbsent(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStore(t)
	defer cleanup()

	data, err := store.Read(ctx, service.CollectionTransactions)
	require.NoError(t, err)
	assert.Nil(t, data, "never-written collection should read as absent")
}

func TestSQLiteStoreWriteReadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStore(t)
	defer cleanup()

	doc := []byte(`[{"id":"t1"}]`)
	require.NoError(t, store.Write(ctx, service.CollectionTransactions, doc))

	got, err := store.Read(ctx, service.CollectionTransactions)
	require.NoError(t, err)
	assert.Equal(t, doc, got)

	// Other collections stay absent
	other, err := store.Read(ctx, service.CollectionBudgets)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestSQLiteStoreWriteReplaces(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStore(t)
	defer cleanup()

	require.NoError(t, store.Write(ctx, service.CollectionBudgets, []byte(`["old"]`)))
	require.NoError(t, store.Write(ctx, service.CollectionBudgets, []byte(`["new"]`)))

	got, err := store.Read(ctx, service.CollectionBudgets)
	require.NoError(t, err)
	assert.Equal(t, []byte(`["new"]`), got)
}

func TestSQLiteStoreEraseIdempotent(t *testing.T) {
	ctx := context.Background()
	store, cleanup := createTestStore(t)
	defer cleanup()

	require.NoError(t, store.Write(ctx, service.CollectionCategories, []byte(`{}`)))
	require.NoError(t, store.Erase(ctx, service.CollectionCategories))

	data, err := store.Read(ctx, service.CollectionCategories)
	require.NoError(t, err)
	assert.Nil(t, data)

	// Second erase is a no-op, not an error
	require.NoError(t, store.Erase(ctx, service.CollectionCategories))
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(ctx))
	require.NoError(t, store.Write(ctx, service.CollectionTransactions, []byte(`[1,2,3]`)))
	require.NoError(t, store.Close())

	reopened, err := NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()
	require.NoError(t, reopened.Migrate(ctx))

	got, err := reopened.Read(ctx, service.CollectionTransactions)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[1,2,3]`), got)
}

func TestSQLiteStoreValidation(t *testing.T) {
	store, cleanup := createTestStore(t)
	defer cleanup()

	err := store.Write(context.Background(), service.CollectionTransactions, nil)
	assert.ErrorIs(t, err, ErrNilParameter)

	_, err = NewSQLiteStore("  ")
	assert.ErrorIs(t, err, ErrEmptyString)
}
