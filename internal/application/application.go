package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"invclean/internal/config"
	"invclean/internal/domain/entity"
	"invclean/internal/domain/service/inventory"
	"invclean/internal/infrastructure/catalog"
	"invclean/internal/infrastructure/gamehost"
	"invclean/internal/infrastructure/persistence"
	"invclean/internal/infrastructure/pricing"
	"invclean/internal/server"
	"invclean/internal/transport/command"
	"invclean/internal/worker"
	"invclean/pkg/application/modules"
	"invclean/pkg/contextx"
	"invclean/pkg/middlewarex"
)

const readHeaderTimeout = 5 * time.Second

// Items that must never be discardable regardless of user selection.
var pinnedBlacklist = []entity.ItemID{ //nolint:gochecknoglobals
	1, // gil
}

func Run(ctx context.Context, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	// 1. Config
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// 2. Item catalog
	cat, err := loadCatalog(cfg.App.CatalogPath)
	if err != nil {
		return fmt.Errorf("loadCatalog: %w", err)
	}
	log.Info("catalog loaded", slog.Int("items", cat.Len()))

	// 3. Selection state
	store, err := persistence.NewFileSelectionStore(cfg.App.StatePath, pinnedBlacklist)
	if err != nil {
		return fmt.Errorf("persistence.NewFileSelectionStore: %w", err)
	}

	// 4. Host adapter. The in-process host carries demo slots; a real
	// game adapter satisfies the same interfaces.
	host := gamehost.NewMemoryHost().WithSlots(demoSlots()...)

	// 5. Pricing
	client := pricing.NewClient(cfg.Pricing.BaseURL, cfg.Pricing.RequestTimeout)
	fetcher := worker.NewPriceFetcher(client, cfg.Pricing)
	world := entity.WorldContext{World: cfg.Pricing.World, Region: cfg.Pricing.Region}

	// 6. Snapshot service and discard sequencer
	snapshots := inventory.NewService(host, cat, store)

	seq := worker.NewSequencer(host, host, cat, store, cfg.Discard).
		WithOnFinished(func(result entity.RunResult) {
			log.Info("discard run finished",
				slog.String("run_id", result.RunID),
				slog.String("state", result.State.String()),
				slog.Int("disposed", result.Disposed),
			)

			if _, err := snapshots.BuildSnapshot(ctx); err != nil {
				log.Error("snapshot refresh after run", "error", err)
			}
		})

	// 7. Commands
	commands := command.NewRegistry()
	if err := registerCommands(commands, log, snapshots, seq, fetcher, world); err != nil {
		return fmt.Errorf("registerCommands: %w", err)
	}

	// 8. HTTP surface
	router := chi.NewRouter()
	router.Use(middlewarex.TraceID, middlewarex.Logger, middlewarex.Recovery)

	srv := server.NewServer(seq, store, snapshots, fetcher, commands, world)
	srv.RegisterRoutes(router)

	// Warm the price cache for the current discardable set.
	if groups, err := snapshots.BuildSnapshot(ctx); err != nil {
		log.Error("initial snapshot", "error", err)
	} else {
		enqueued := fetcher.BatchRequest(ctx, discardableIDs(groups), world)
		log.Info("price warmup scheduled", slog.Int("enqueued", enqueued))
	}

	g, gCtx := errgroup.WithContext(ctx)

	modules.HTTPServer{ShutdownTimeout: cfg.Server.ShutdownTimeout}.Run(gCtx, g, &http.Server{
		Addr:              cfg.Server.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: readHeaderTimeout,
	})

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.Server.ProbeListenAddress,
	}.Run(gCtx, g)

	modules.MetricServer{ListenAddress: cfg.Server.MetricsListenAddress}.Run(gCtx, g)

	g.Go(func() error {
		<-gCtx.Done()

		seq.Abort()
		fetcher.Wait()

		return nil
	})

	return g.Wait()
}

func loadCatalog(path string) (*catalog.Memory, error) {
	if path == "" {
		return catalog.NewMemory(demoRecords()...), nil
	}

	return catalog.LoadFile(path)
}

func discardableIDs(groups []entity.CategoryGroup) []entity.ItemID {
	var ids []entity.ItemID

	for _, group := range groups {
		for _, item := range group.Items {
			if item.Discardable {
				ids = append(ids, item.Record.ID)
			}
		}
	}

	return ids
}
