package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"puntoventa-backend/models"
)

func TestSnapshotConsumeClearsImmediately(t *testing.T) {
	store := NewSaleSnapshotStore()
	store.Stage("user-1", models.Sale{Total: 1500})

	sale, ok := store.Consume("user-1")
	require.True(t, ok)
	assert.Equal(t, 1500.0, sale.Total)

	// The snapshot is gone after being consumed once
	_, ok = store.Consume("user-1")
	assert.False(t, ok)
}

func TestSnapshotStageReplacesPrevious(t *testing.T) {
	store := NewSaleSnapshotStore()
	store.Stage("user-1", models.Sale{Total: 100})
	store.Stage("user-1", models.Sale{Total: 200})

	sale, ok := store.Consume("user-1")
	require.True(t, ok)
	assert.Equal(t, 200.0, sale.Total)
}

func TestSnapshotIsPerUser(t *testing.T) {
	store := NewSaleSnapshotStore()
	store.Stage("user-1", models.Sale{Total: 100})

	_, ok := store.Consume("user-2")
	assert.False(t, ok)

	_, ok = store.Consume("user-1")
	assert.True(t, ok)
}

func TestConsumeOnEmptyStore(t *testing.T) {
	store := NewSaleSnapshotStore()
	_, ok := store.Consume("nadie")
	assert.False(t, ok)
}
