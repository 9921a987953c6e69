// Package gamehost adapts the host application's inventory and dialog
// surfaces. MemoryHost is the in-process implementation used for offline
// runs and tests; a real host adapter satisfies the same interfaces.
package gamehost

import (
	"fmt"
	"sync"
	"time"

	"invclean/internal/domain/entity"
)

const defaultPromptText = "Discard this item?"

type pendingDisposal struct {
	container int
	slot      int
	itemID    entity.ItemID
	at        time.Time
}

// MemoryHost simulates the host: Dispose removes the item either directly
// or after the confirmation dialog is accepted, depending on configuration.
type MemoryHost struct {
	mu             sync.Mutex
	slots          []entity.InventorySlotEntry
	requireConfirm bool
	promptDelay    time.Duration
	promptText     string
	pending        *pendingDisposal

	disposeCalls  int
	acceptCalls   int
	disposedItems []entity.ItemID
}

func NewMemoryHost() *MemoryHost {
	return &MemoryHost{
		requireConfirm: true,
		promptText:     defaultPromptText,
	}
}

func (h *MemoryHost) WithSlots(slots ...entity.InventorySlotEntry) *MemoryHost {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.slots = append([]entity.InventorySlotEntry(nil), slots...)

	return h
}

// WithPromptDelay delays the dialog's appearance after a Dispose call.
func (h *MemoryHost) WithPromptDelay(d time.Duration) *MemoryHost {
	h.promptDelay = d
	return h
}

// WithoutConfirmation makes Dispose complete immediately, with no dialog.
func (h *MemoryHost) WithoutConfirmation() *MemoryHost {
	h.requireConfirm = false
	return h
}

func (h *MemoryHost) WithPromptText(text string) *MemoryHost {
	h.promptText = text
	return h
}

func (h *MemoryHost) EnumerateSlots() []entity.InventorySlotEntry {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]entity.InventorySlotEntry(nil), h.slots...)
}

func (h *MemoryHost) Dispose(container, slot int) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.disposeCalls++

	idx := h.findLocked(container, slot)
	if idx < 0 {
		return fmt.Errorf("no item in container %d slot %d", container, slot)
	}

	h.disposedItems = append(h.disposedItems, h.slots[idx].ItemID)

	if !h.requireConfirm {
		h.slots = append(h.slots[:idx], h.slots[idx+1:]...)
		return nil
	}

	h.pending = &pendingDisposal{
		container: container,
		slot:      slot,
		itemID:    h.slots[idx].ItemID,
		at:        time.Now(),
	}

	return nil
}

func (h *MemoryHost) IsVisible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.pending != nil && time.Since(h.pending.at) >= h.promptDelay
}

func (h *MemoryHost) PromptText() string {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending == nil {
		return ""
	}

	return h.promptText
}

func (h *MemoryHost) Accept() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.pending == nil {
		return fmt.Errorf("no dialog to accept")
	}

	h.acceptCalls++

	if idx := h.findLocked(h.pending.container, h.pending.slot); idx >= 0 {
		h.slots = append(h.slots[:idx], h.slots[idx+1:]...)
	}

	h.pending = nil

	return nil
}

func (h *MemoryHost) DisposeCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.disposeCalls
}

func (h *MemoryHost) AcceptCalls() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.acceptCalls
}

// DisposedItems returns the item ids passed to Dispose, in call order.
func (h *MemoryHost) DisposedItems() []entity.ItemID {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]entity.ItemID(nil), h.disposedItems...)
}

func (h *MemoryHost) findLocked(container, slot int) int {
	for i, entry := range h.slots {
		if entry.Container == container && entry.Slot == slot {
			return i
		}
	}

	return -1
}
