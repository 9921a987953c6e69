package persistence_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"invclean/internal/domain/entity"
	"invclean/internal/infrastructure/persistence"
)

func TestFileSelectionStoreRoundTrip(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "state.json")
	pinned := []entity.ItemID{1}

	store, err := persistence.NewFileSelectionStore(path, pinned)
	rq.NoError(err)
	rq.Empty(store.Selection())

	rq.NoError(store.ReplaceSelection([]entity.ItemID{1001, 1002}))
	rq.NoError(store.ReplaceBlacklist([]entity.ItemID{2001}))

	reloaded, err := persistence.NewFileSelectionStore(path, pinned)
	rq.NoError(err)
	rq.Equal([]entity.ItemID{1001, 1002}, reloaded.Selection())
	rq.True(reloaded.IsSelected(1001))
	rq.True(reloaded.Blacklist().Contains(2001))
	rq.True(reloaded.Blacklist().Contains(1))
}

func TestFileSelectionStoreRemove(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "state.json")

	store, err := persistence.NewFileSelectionStore(path, nil)
	rq.NoError(err)

	rq.NoError(store.ReplaceSelection([]entity.ItemID{1001, 1002, 1003}))
	rq.NoError(store.Remove(1002, 1003))
	rq.Equal([]entity.ItemID{1001}, store.Selection())
}

func TestFileSelectionStorePinnedSurvivesReplace(t *testing.T) {
	rq := require.New(t)

	path := filepath.Join(t.TempDir(), "state.json")
	pinned := []entity.ItemID{1, 2}

	store, err := persistence.NewFileSelectionStore(path, pinned)
	rq.NoError(err)

	// Replace with a list that omits every pinned id.
	rq.NoError(store.ReplaceBlacklist([]entity.ItemID{3001}))

	bl := store.Blacklist()
	rq.True(bl.Contains(1))
	rq.True(bl.Contains(2))
	rq.True(bl.Contains(3001))
	rq.True(bl.IsPinned(1))
	rq.False(bl.IsPinned(3001))
}
