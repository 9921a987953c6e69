package worker_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"invclean/internal/config"
	"invclean/internal/domain/entity"
	"invclean/internal/domain/service/inventory"
	"invclean/internal/infrastructure/catalog"
	"invclean/internal/infrastructure/gamehost"
	"invclean/internal/infrastructure/persistence"
	"invclean/internal/worker"
)

type staticBlacklist struct {
	bl entity.Blacklist
}

func (s staticBlacklist) Blacklist() entity.Blacklist {
	return s.bl
}

func testDiscardConfig() config.Discard {
	return config.Discard{
		SettleDelay:  10 * time.Millisecond,
		PollInterval: 10 * time.Millisecond,
		GracePeriod:  time.Second,
	}
}

func sequencerCatalog() *catalog.Memory {
	return catalog.NewMemory(
		entity.ItemRecord{ID: 1001, Name: "Rat Tail", CategoryID: 10, CategoryName: "Reagent"},
		entity.ItemRecord{ID: 1002, Name: "Bone Chip", CategoryID: 10, CategoryName: "Reagent"},
		entity.ItemRecord{ID: 2001, Name: "Bronze Sword", CategoryID: 20, CategoryName: "Arms"},
	)
}

func waitForRun(t *testing.T, seq *worker.Sequencer) entity.RunResult {
	t.Helper()

	require.Eventually(t, func() bool {
		return !seq.IsRunning()
	}, 5*time.Second, 5*time.Millisecond)

	result, ok := seq.LastResult()
	require.True(t, ok)

	return result
}

func TestRunDiscardsFilteredItemsInOrder(t *testing.T) {
	rq := require.New(t)

	host := gamehost.NewMemoryHost().WithSlots(
		entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 1},
		entity.InventorySlotEntry{Container: 0, Slot: 1, ItemID: 1002, Quantity: 1},
		entity.InventorySlotEntry{Container: 0, Slot: 2, ItemID: 2001, Quantity: 1},
	)

	seq := worker.NewSequencer(host, host, sequencerCatalog(), staticBlacklist{entity.NewBlacklist(nil, nil)}, testDiscardConfig())

	seq.StartRun(context.Background(), entity.NewItemFilter(1001, 1002))

	result := waitForRun(t, seq)

	rq.Equal(entity.RunStateDone, result.State)
	rq.Equal(2, result.Disposed)
	rq.Equal([]entity.ItemID{1001, 1002}, host.DisposedItems())
	rq.Equal(2, host.AcceptCalls())

	// The unfiltered item is untouched.
	slots := host.EnumerateSlots()
	rq.Len(slots, 1)
	rq.EqualValues(2001, slots[0].ItemID)
}

func TestRunWithoutConfirmationPrompt(t *testing.T) {
	rq := require.New(t)

	host := gamehost.NewMemoryHost().WithoutConfirmation().WithSlots(
		entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 1},
	)

	seq := worker.NewSequencer(host, host, sequencerCatalog(), staticBlacklist{entity.NewBlacklist(nil, nil)}, testDiscardConfig())

	seq.StartRun(context.Background(), entity.NewItemFilter(1001))

	result := waitForRun(t, seq)

	rq.Equal(entity.RunStateDone, result.State)
	rq.Equal(1, result.Disposed)
	rq.Equal(0, host.AcceptCalls())
}

func TestRunFailsWhenPromptNeverAppears(t *testing.T) {
	rq := require.New(t)

	cfg := testDiscardConfig()
	cfg.GracePeriod = 150 * time.Millisecond

	host := gamehost.NewMemoryHost().WithPromptDelay(time.Hour).WithSlots(
		entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 1},
		entity.InventorySlotEntry{Container: 0, Slot: 1, ItemID: 1002, Quantity: 1},
	)

	seq := worker.NewSequencer(host, host, sequencerCatalog(), staticBlacklist{entity.NewBlacklist(nil, nil)}, cfg)

	seq.StartRun(context.Background(), entity.NewItemFilter(1001, 1002))

	result := waitForRun(t, seq)

	rq.Equal(entity.RunStateFailed, result.State)
	rq.Contains(result.Reason, "confirmation prompt never appeared")

	// No further disposal after the failure.
	rq.Equal(1, host.DisposeCalls())
}

func TestRunIgnoresUnrelatedDialog(t *testing.T) {
	rq := require.New(t)

	cfg := testDiscardConfig()
	cfg.GracePeriod = 150 * time.Millisecond

	host := gamehost.NewMemoryHost().
		WithPromptText("Are you sure you want to log out?").
		WithSlots(entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 1})

	seq := worker.NewSequencer(host, host, sequencerCatalog(), staticBlacklist{entity.NewBlacklist(nil, nil)}, cfg)

	seq.StartRun(context.Background(), entity.NewItemFilter(1001))

	result := waitForRun(t, seq)

	rq.Equal(entity.RunStateFailed, result.State)
	rq.Equal(0, host.AcceptCalls())
}

func TestRunSkipsBlacklistedItems(t *testing.T) {
	rq := require.New(t)

	host := gamehost.NewMemoryHost().WithSlots(
		entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 1},
	)

	seq := worker.NewSequencer(
		host, host, sequencerCatalog(),
		staticBlacklist{entity.NewBlacklist(nil, []entity.ItemID{1001})},
		testDiscardConfig(),
	)

	seq.StartRun(context.Background(), entity.NewItemFilter(1001))

	result := waitForRun(t, seq)

	rq.Equal(entity.RunStateDone, result.State)
	rq.Equal(0, result.Disposed)
	rq.Equal(0, host.DisposeCalls())
}

func TestStartRunSupersedesActiveRun(t *testing.T) {
	rq := require.New(t)

	cfg := testDiscardConfig()
	cfg.SettleDelay = 200 * time.Millisecond

	host := gamehost.NewMemoryHost().WithSlots(
		entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 1},
		entity.InventorySlotEntry{Container: 0, Slot: 1, ItemID: 1002, Quantity: 1},
	)

	seq := worker.NewSequencer(host, host, sequencerCatalog(), staticBlacklist{entity.NewBlacklist(nil, nil)}, cfg)

	first := seq.StartRun(context.Background(), entity.NewItemFilter(1001))
	second := seq.StartRun(context.Background(), entity.NewItemFilter(1002))

	rq.NotEqual(first, second)

	active, ok := seq.ActiveRun()
	if ok {
		rq.Equal(second, active)
	}

	result := waitForRun(t, seq)

	rq.Equal(second, result.RunID)
	rq.Equal(entity.RunStateDone, result.State)
}

func TestAbortStopsRunWithoutReporting(t *testing.T) {
	rq := require.New(t)

	cfg := testDiscardConfig()
	cfg.SettleDelay = 500 * time.Millisecond

	host := gamehost.NewMemoryHost().WithSlots(
		entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 1},
	)

	reported := false

	seq := worker.NewSequencer(host, host, sequencerCatalog(), staticBlacklist{entity.NewBlacklist(nil, nil)}, cfg).
		WithOnFinished(func(entity.RunResult) { reported = true })

	seq.StartRun(context.Background(), entity.NewItemFilter(1001))
	seq.Abort()

	rq.False(seq.IsRunning())

	result, ok := seq.LastResult()
	rq.True(ok)
	rq.Equal(entity.RunStateAborted, result.State)
	rq.False(reported)
}

// Full scenario: one slot with item 1001, the prompt appears within the
// grace period, the run ends Done and the refresh purges the stale
// selection.
func TestExampleScenario(t *testing.T) {
	rq := require.New(t)

	host := gamehost.NewMemoryHost().WithSlots(
		entity.InventorySlotEntry{Container: 0, Slot: 0, ItemID: 1001, Quantity: 3},
	)

	store, err := persistence.NewFileSelectionStore(filepath.Join(t.TempDir(), "state.json"), nil)
	rq.NoError(err)
	rq.NoError(store.ReplaceSelection([]entity.ItemID{1001}))

	cat := sequencerCatalog()
	snapshots := inventory.NewService(host, cat, store)

	seq := worker.NewSequencer(host, host, cat, store, testDiscardConfig()).
		WithOnFinished(func(entity.RunResult) {
			_, _ = snapshots.BuildSnapshot(context.Background())
		})

	seq.StartRun(context.Background(), entity.NewItemFilter(1001))

	result := waitForRun(t, seq)

	rq.Equal(entity.RunStateDone, result.State)
	rq.Equal(1, result.Disposed)
	rq.Equal(1, host.DisposeCalls())
	rq.Equal(1, host.AcceptCalls())

	rq.Eventually(func() bool {
		return len(store.Selection()) == 0
	}, time.Second, 10*time.Millisecond)
}
