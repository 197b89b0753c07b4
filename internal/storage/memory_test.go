package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Suvadipmandal/tally/internal/service"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	data, err := store.Read(ctx, service.CollectionTransactions)
	require.NoError(t, err)
	assert.Nil(t, data)

	require.NoError(t, store.Write(ctx, service.CollectionTransactions, []byte(`[]`)))

	got, err := store.Read(ctx, service.CollectionTransactions)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	require.NoError(t, store.Erase(ctx, service.CollectionTransactions))
	got, err = store.Read(ctx, service.CollectionTransactions)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []byte(`abc`)
	require.NoError(t, store.Write(ctx, service.CollectionBudgets, original))

	// Mutating the caller's buffer must not affect the stored document
	original[0] = 'X'
	got, err := store.Read(ctx, service.CollectionBudgets)
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), got)

	// Mutating a read result must not affect subsequent reads
	got[0] = 'Y'
	again, err := store.Read(ctx, service.CollectionBudgets)
	require.NoError(t, err)
	assert.Equal(t, []byte(`abc`), again)
}
