// Package server exposes the inter-process query surface: read-only
// snapshots of the discard selection and run state, plus run control and
// cached price lookups.
package server

import (
	"context"

	"invclean/internal/domain/entity"
)

type Sequencer interface {
	StartRun(ctx context.Context, filter entity.ItemFilter) string
	Abort()
	ActiveRun() (string, bool)
	LastResult() (entity.RunResult, bool)
}

type SelectionStore interface {
	Selection() []entity.ItemID
	ReplaceSelection(ids []entity.ItemID) error
}

type SnapshotBuilder interface {
	BuildSnapshot(ctx context.Context) ([]entity.CategoryGroup, error)
}

type PriceFetcher interface {
	Cached(id entity.ItemID) (entity.PriceInfo, bool)
	IsLoading(id entity.ItemID) bool
	RequestFetch(ctx context.Context, id entity.ItemID, wc entity.WorldContext) bool
}

type CommandDispatcher interface {
	Dispatch(ctx context.Context, input string) error
}

type Server struct {
	sequencer Sequencer
	store     SelectionStore
	snapshots SnapshotBuilder
	prices    PriceFetcher
	commands  CommandDispatcher
	world     entity.WorldContext
}

func NewServer(
	sequencer Sequencer,
	store SelectionStore,
	snapshots SnapshotBuilder,
	prices PriceFetcher,
	commands CommandDispatcher,
	world entity.WorldContext,
) Server {
	return Server{
		sequencer: sequencer,
		store:     store,
		snapshots: snapshots,
		prices:    prices,
		commands:  commands,
		world:     world,
	}
}
