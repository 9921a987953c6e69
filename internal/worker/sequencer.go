package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/rs/xid"

	"invclean/internal/config"
	"invclean/internal/domain/entity"
	"invclean/internal/domain/service/eligibility"
	"invclean/pkg/logx"
)

type InventorySource interface {
	EnumerateSlots() []entity.InventorySlotEntry
	Dispose(container, slot int) error
}

type ConfirmationSurface interface {
	IsVisible() bool
	PromptText() string
	Accept() error
}

type Catalog interface {
	Lookup(id entity.ItemID) (entity.ItemRecord, bool)
}

type BlacklistSource interface {
	Blacklist() entity.Blacklist
}

// Locale-aware fragments of the host's "discard item" / "discard
// collectable" prompts. A visible dialog that matches none of these is
// some unrelated dialog and is left alone.
//
//nolint:gochecknoglobals
var discardPromptPatterns = []string{
	"discard",            // en
	"wirklich wegwerfen", // de
	"jeter",              // fr
	"を破棄します",              // ja
}

func matchesDiscardPrompt(text string) bool {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return false
	}

	for _, pattern := range discardPromptPatterns {
		if strings.Contains(text, pattern) {
			return true
		}
	}

	return false
}

// Sequencer drives one-at-a-time disposal of filtered items through the
// host's confirmation surface. At most one run is active; a new run
// supersedes the old one. Every step re-derives its target from live
// inventory state, so concurrent slot mutation cannot double-dispose.
type Sequencer struct {
	inv        InventorySource
	confirm    ConfirmationSurface
	catalog    Catalog
	blacklist  BlacklistSource
	cfg        config.Discard
	onFinished func(entity.RunResult)

	startMu sync.Mutex

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	runID      string
	lastResult *entity.RunResult
	wg         sync.WaitGroup
}

func NewSequencer(
	inv InventorySource,
	confirm ConfirmationSurface,
	catalog Catalog,
	blacklist BlacklistSource,
	cfg config.Discard,
) *Sequencer {
	return &Sequencer{
		inv:       inv,
		confirm:   confirm,
		catalog:   catalog,
		blacklist: blacklist,
		cfg:       cfg,
	}
}

// WithOnFinished installs a hook called after a run ends in Done or
// Failed. Aborted runs do not report.
func (s *Sequencer) WithOnFinished(fn func(entity.RunResult)) *Sequencer {
	s.onFinished = fn
	return s
}

// StartRun begins a run over the given filter, aborting any active run
// first.
func (s *Sequencer) StartRun(ctx context.Context, filter entity.ItemFilter) string {
	s.startMu.Lock()
	defer s.startMu.Unlock()

	s.Abort()

	runCtx, cancel := context.WithCancel(ctx)
	runID := xid.New().String()

	s.mu.Lock()
	s.cancelFunc = cancel
	s.isRunning = true
	s.runID = runID
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()
		defer cancel()

		s.run(runCtx, runID, filter)
	}()

	return runID
}

// Abort cancels the active run, drops its pending steps and waits for it
// to wind down. No-op when idle.
func (s *Sequencer) Abort() {
	s.mu.Lock()

	if !s.isRunning {
		s.mu.Unlock()
		return
	}

	if s.cancelFunc != nil {
		s.cancelFunc()
	}

	s.mu.Unlock()

	s.wg.Wait()
}

func (s *Sequencer) IsRunning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isRunning
}

func (s *Sequencer) ActiveRun() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return "", false
	}

	return s.runID, true
}

func (s *Sequencer) LastResult() (entity.RunResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastResult == nil {
		return entity.RunResult{}, false
	}

	return *s.lastResult, true
}

//nolint:funlen
func (s *Sequencer) run(ctx context.Context, runID string, filter entity.ItemFilter) {
	log := logger(ctx).With(slog.String(logx.FieldRunID, runID))

	state := entity.RunStateDispatching
	disposed := 0

	var (
		target   entity.InventorySlotEntry
		deadline time.Time
	)

	for {
		if ctx.Err() != nil {
			s.finish(ctx, entity.RunResult{RunID: runID, State: entity.RunStateAborted, Disposed: disposed})
			return
		}

		switch state {
		case entity.RunStateDispatching:
			t, ok := s.nextTarget(filter)
			if !ok {
				s.finish(ctx, entity.RunResult{RunID: runID, State: entity.RunStateDone, Disposed: disposed})
				return
			}

			log.Debug(
				"dispatching disposal",
				slog.Int(logx.FieldContainer, t.Container),
				slog.Int(logx.FieldSlot, t.Slot),
				logx.Uint32(logx.FieldItemID, uint32(t.ItemID)),
			)

			if err := s.inv.Dispose(t.Container, t.Slot); err != nil {
				s.finish(ctx, entity.RunResult{
					RunID: runID, State: entity.RunStateFailed, Disposed: disposed,
					Reason: fmt.Sprintf("dispose: %v", err),
				})

				return
			}

			disposalsTotal.Inc()

			target = t
			deadline = time.Now().Add(s.cfg.GracePeriod)

			if !s.sleep(ctx, s.cfg.SettleDelay) {
				continue
			}

			state = entity.RunStateAwaitingConfirmation

		case entity.RunStateAwaitingConfirmation:
			if s.confirm.IsVisible() && matchesDiscardPrompt(s.confirm.PromptText()) {
				if err := s.confirm.Accept(); err != nil {
					s.finish(ctx, entity.RunResult{
						RunID: runID, State: entity.RunStateFailed, Disposed: disposed,
						Reason: fmt.Sprintf("accept confirmation: %v", err),
					})

					return
				}

				s.sleep(ctx, s.cfg.SettleDelay)

				state = entity.RunStateConfirmed

				continue
			}

			if s.slotResolved(target) {
				// Host completed the action without asking, or the
				// inventory shifted under us. Either way, pick the next
				// target from live state.
				disposed++
				state = entity.RunStateDispatching

				continue
			}

			if time.Now().After(deadline) {
				s.finish(ctx, entity.RunResult{
					RunID: runID, State: entity.RunStateFailed, Disposed: disposed,
					Reason: "confirmation prompt never appeared",
				})

				return
			}

			s.sleep(ctx, s.cfg.PollInterval)

		case entity.RunStateConfirmed:
			if s.slotResolved(target) {
				disposed++
				state = entity.RunStateDispatching

				continue
			}

			if time.Now().After(deadline) {
				s.finish(ctx, entity.RunResult{
					RunID: runID, State: entity.RunStateFailed, Disposed: disposed,
					Reason: "item still present after confirmation",
				})

				return
			}

			s.sleep(ctx, s.cfg.PollInterval)

		default:
			s.finish(ctx, entity.RunResult{
				RunID: runID, State: entity.RunStateFailed, Disposed: disposed,
				Reason: fmt.Sprintf("unexpected state %s", state),
			})

			return
		}
	}
}

// nextTarget scans live slots for the first entry whose item is in the
// filter and currently eligible. Never trusts a stale list.
func (s *Sequencer) nextTarget(filter entity.ItemFilter) (entity.InventorySlotEntry, bool) {
	blacklist := s.blacklist.Blacklist()

	for _, slot := range s.inv.EnumerateSlots() {
		if slot.ItemID == 0 || !filter.Contains(slot.ItemID) {
			continue
		}

		rec, ok := s.catalog.Lookup(slot.ItemID)
		if !ok {
			continue
		}

		if !eligibility.IsDiscardable(rec, blacklist) {
			continue
		}

		return slot, true
	}

	return entity.InventorySlotEntry{}, false
}

// slotResolved re-reads the dispatched slot; the disposal is resolved once
// the slot no longer holds the originally-targeted item.
func (s *Sequencer) slotResolved(target entity.InventorySlotEntry) bool {
	for _, slot := range s.inv.EnumerateSlots() {
		if slot.Container != target.Container || slot.Slot != target.Slot {
			continue
		}

		return slot.ItemID != target.ItemID
	}

	return true
}

func (s *Sequencer) finish(ctx context.Context, result entity.RunResult) {
	s.mu.Lock()
	s.isRunning = false
	s.cancelFunc = nil
	s.lastResult = &result
	s.mu.Unlock()

	runsTotal.WithLabelValues(result.State.String()).Inc()

	if result.State == entity.RunStateAborted {
		logger(ctx).Debug("discard run aborted", slog.String(logx.FieldRunID, result.RunID))
		return
	}

	logger(ctx).Info(
		"discard run finished",
		slog.String(logx.FieldRunID, result.RunID),
		slog.String("state", result.State.String()),
		slog.Int("disposed", result.Disposed),
		slog.String("reason", result.Reason),
	)

	if s.onFinished != nil {
		s.onFinished(result)
	}
}

func (s *Sequencer) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-time.After(d):
		return true
	case <-ctx.Done():
		return false
	}
}
