package application

import (
	"context"
	"fmt"
	"log/slog"

	"invclean/internal/domain/entity"
	"invclean/internal/domain/service/inventory"
	"invclean/internal/transport/command"
	"invclean/internal/worker"
)

// registerCommands wires the chat-style entry points. "/discardall"
// opens the manager view (logs the current snapshot and warms prices);
// "/discardall config" reports the active settings instead.
func registerCommands(
	registry *command.Registry,
	log *slog.Logger,
	snapshots *inventory.Service,
	seq *worker.Sequencer,
	fetcher *worker.PriceFetcher,
	world entity.WorldContext,
) error {
	err := registry.Register("/discardall", "open the discard manager; 'config' shows settings", func(ctx context.Context, args string) error {
		if args == "config" {
			log.Info("discard settings",
				slog.String("world", world.World),
				slog.String("region", world.Region),
			)

			return nil
		}

		groups, err := snapshots.BuildSnapshot(ctx)
		if err != nil {
			return fmt.Errorf("snapshots.BuildSnapshot: %w", err)
		}

		total := 0
		for _, group := range groups {
			total += group.DistinctItems
		}

		enqueued := fetcher.BatchRequest(ctx, discardableIDs(groups), world)

		log.Info("discard manager opened",
			slog.Int("categories", len(groups)),
			slog.Int("distinct_items", total),
			slog.Int("price_fetches", enqueued),
		)

		return nil
	})
	if err != nil {
		return err
	}

	return registry.Register("/abort", "stop the active discard run", func(context.Context, string) error {
		if _, ok := seq.ActiveRun(); !ok {
			return fmt.Errorf("no active run")
		}

		seq.Abort()

		return nil
	})
}
