package worker

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"runtime/debug"
	"strconv"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"

	"invclean/internal/config"
	"invclean/internal/domain"
	"invclean/internal/domain/entity"
	"invclean/pkg/errcodes"
	"invclean/pkg/logx"
)

type PricingClient interface {
	MarketBoard(ctx context.Context, scope string, itemID entity.ItemID) (entity.PriceInfo, error)
}

type negativeEntry struct {
	RateLimited bool
	At          time.Time
}

// PriceFetcher enriches displayed items with market prices. Lookups are
// synchronous against the cache only; fetches run as bounded concurrent
// tasks and never block the caller.
type PriceFetcher struct {
	client PricingClient
	cfg    config.Pricing

	prices   *cache.Cache
	negative *cache.Cache

	mu       sync.Mutex
	inFlight map[entity.ItemID]time.Time

	// Single shared throttle token: at most one network dispatch per
	// MinRequestInterval across all fetch tasks.
	throttleMu   sync.Mutex
	lastDispatch time.Time

	wg sync.WaitGroup
}

func NewPriceFetcher(client PricingClient, cfg config.Pricing) *PriceFetcher {
	return &PriceFetcher{
		client:   client,
		cfg:      cfg,
		prices:   cache.New(cfg.CacheTTL, 10*time.Minute),
		negative: cache.New(cfg.FailureBackoff, time.Minute),
		inFlight: make(map[entity.ItemID]time.Time),
	}
}

// Cached returns the cached price, if any. Never blocks, never fetches.
func (f *PriceFetcher) Cached(id entity.ItemID) (entity.PriceInfo, bool) {
	v, ok := f.prices.Get(priceKey(id))
	if !ok {
		return entity.PriceInfo{}, false
	}

	return v.(entity.PriceInfo), true
}

// IsLoading reports whether a fetch for the item is in flight. The render
// path uses this as the item's loading indicator.
func (f *PriceFetcher) IsLoading(id entity.ItemID) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.inFlight[id]

	return ok
}

func (f *PriceFetcher) InFlightCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return len(f.inFlight)
}

// RequestFetch enqueues an asynchronous fetch unless the price display is
// disabled, a fresh cache entry exists, the item is in negative-cache
// backoff, the item is already loading, or the in-flight ceiling is
// reached. Repeated calls while in flight are no-ops.
func (f *PriceFetcher) RequestFetch(ctx context.Context, id entity.ItemID, wc entity.WorldContext) bool {
	if !f.cfg.Enabled || id == 0 {
		return false
	}

	if _, ok := f.Cached(id); ok {
		return false
	}

	if _, ok := f.negative.Get(priceKey(id)); ok {
		return false
	}

	now := time.Now()

	f.mu.Lock()

	f.sweepStuckLocked(ctx, now)

	if _, loading := f.inFlight[id]; loading {
		f.mu.Unlock()
		return false
	}

	if len(f.inFlight) >= f.cfg.MaxInFlight {
		f.mu.Unlock()
		return false
	}

	f.inFlight[id] = now
	f.mu.Unlock()

	f.wg.Add(1)

	go f.fetch(ctx, id, wc)

	return true
}

// BatchRequest fetches the first N items still needing a price, where N is
// the remaining concurrency budget. Input order is priority order.
func (f *PriceFetcher) BatchRequest(ctx context.Context, ids []entity.ItemID, wc entity.WorldContext) int {
	f.mu.Lock()
	f.sweepStuckLocked(ctx, time.Now())
	budget := f.cfg.MaxInFlight - len(f.inFlight)
	f.mu.Unlock()

	enqueued := 0

	for _, id := range ids {
		if enqueued >= budget {
			break
		}

		if f.RequestFetch(ctx, id, wc) {
			enqueued++
		}
	}

	return enqueued
}

// Clear drops both caches and the in-flight bookkeeping. Called on an
// inventory refresh action.
func (f *PriceFetcher) Clear() {
	f.prices.Flush()
	f.negative.Flush()

	f.mu.Lock()
	f.inFlight = make(map[entity.ItemID]time.Time)
	f.mu.Unlock()
}

// Wait blocks until all in-flight fetch tasks have finished. Shutdown and
// test helper.
func (f *PriceFetcher) Wait() {
	f.wg.Wait()
}

func (f *PriceFetcher) fetch(ctx context.Context, id entity.ItemID, wc entity.WorldContext) {
	defer f.wg.Done()

	// The item must leave the in-flight set on every exit path, panics
	// included, or the fetcher wedges on it forever.
	defer func() {
		if rec := recover(); rec != nil {
			logger(ctx).Error(
				"panic in price fetch",
				slog.Any(logx.FieldError, rec),
				slog.String(logx.FieldStack, string(debug.Stack())),
			)
		}

		f.mu.Lock()
		delete(f.inFlight, id)
		f.mu.Unlock()
	}()

	// Detach from the caller's cancellation: the requester is typically a
	// render tick that returns immediately.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), f.cfg.RequestTimeout)
	defer cancel()

	if err := f.waitForNextSlot(ctx); err != nil {
		f.negative.Set(priceKey(id), negativeEntry{At: time.Now()}, f.cfg.FailureBackoff)
		return
	}

	scope := wc.World
	if f.cfg.PreferRegionScope && wc.Region != "" {
		scope = wc.Region
	}

	info, err := f.client.MarketBoard(ctx, scope, id)

	if err != nil && f.shouldFallBack(err, wc) {
		logger(ctx).Debug(
			"retrying fetch against region scope",
			logx.Uint32(logx.FieldItemID, uint32(id)),
			slog.String(logx.FieldScope, wc.Region),
		)

		if werr := f.waitForNextSlot(ctx); werr == nil {
			info, err = f.client.MarketBoard(ctx, wc.Region, id)
		}
	}

	switch {
	case err == nil:
		f.prices.Set(priceKey(id), info, f.cfg.CacheTTL)
		f.negative.Delete(priceKey(id))
		priceFetchesTotal.WithLabelValues("success").Inc()
	case isRateLimited(err):
		f.negative.Set(priceKey(id), negativeEntry{RateLimited: true, At: time.Now()}, f.cfg.RateLimitBackoff)
		priceFetchesTotal.WithLabelValues("rate_limited").Inc()
		logger(ctx).Warn("pricing service rate limited", logx.Uint32(logx.FieldItemID, uint32(id)))
	default:
		f.negative.Set(priceKey(id), negativeEntry{At: time.Now()}, f.cfg.FailureBackoff)
		priceFetchesTotal.WithLabelValues("failure").Inc()
		logger(ctx).Debug(
			"price fetch failed",
			logx.Uint32(logx.FieldItemID, uint32(id)),
			logx.Error(err),
		)
	}
}

// shouldFallBack decides whether to retry the whole fetch once against the
// broad region scope after a narrow-scope miss.
func (f *PriceFetcher) shouldFallBack(err error, wc entity.WorldContext) bool {
	if f.cfg.PreferRegionScope || !f.cfg.RegionFallback || wc.Region == "" {
		return false
	}

	return isNotFound(err) || isTimeout(err)
}

func (f *PriceFetcher) waitForNextSlot(ctx context.Context) error {
	f.throttleMu.Lock()
	defer f.throttleMu.Unlock()

	if f.lastDispatch.IsZero() {
		f.lastDispatch = time.Now()
		return nil
	}

	elapsed := time.Since(f.lastDispatch)
	if elapsed >= f.cfg.MinRequestInterval {
		f.lastDispatch = time.Now()
		return nil
	}

	select {
	case <-time.After(f.cfg.MinRequestInterval - elapsed):
		f.lastDispatch = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// sweepStuckLocked evicts in-flight entries older than the stuck timeout,
// so a hung request can never wedge the fetcher. Caller holds f.mu.
func (f *PriceFetcher) sweepStuckLocked(ctx context.Context, now time.Time) {
	for id, started := range f.inFlight {
		if now.Sub(started) <= f.cfg.StuckTimeout {
			continue
		}

		delete(f.inFlight, id)
		priceFetchesStuck.Inc()

		logger(ctx).Warn(
			"evicted stuck price fetch",
			logx.Uint32(logx.FieldItemID, uint32(id)),
			slog.Int64(logx.FieldDurationMs, now.Sub(started).Milliseconds()),
		)
	}
}

func priceKey(id entity.ItemID) string {
	return strconv.FormatUint(uint64(id), 10)
}

func isRateLimited(err error) bool {
	code, ok := domain.GetCode(err)
	return ok && code == errcodes.RateLimited
}

func isNotFound(err error) bool {
	code, ok := domain.GetCode(err)
	return ok && code == errcodes.ItemNotFound
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
