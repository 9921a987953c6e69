// Package inventory turns the raw slot enumeration into categorized,
// de-duplicated groups and keeps the persisted discard selection aligned
// with the current eligibility decisions.
package inventory

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"

	"invclean/internal/domain/entity"
	"invclean/internal/domain/service/eligibility"
)

type InventorySource interface {
	EnumerateSlots() []entity.InventorySlotEntry
}

type Catalog interface {
	Lookup(id entity.ItemID) (entity.ItemRecord, bool)
}

type SelectionStore interface {
	Selection() []entity.ItemID
	Remove(ids ...entity.ItemID) error
	Blacklist() entity.Blacklist
}

type Service struct {
	inv     InventorySource
	catalog Catalog
	store   SelectionStore
}

func NewService(inv InventorySource, catalog Catalog, store SelectionStore) *Service {
	return &Service{
		inv:     inv,
		catalog: catalog,
		store:   store,
	}
}

// BuildSnapshot reads the live slots and rebuilds the category groups from
// scratch. Slots with item id 0 or without a catalog record are treated as
// absent. After building, every selected id whose decision is no longer
// discardable is purged from the persisted selection.
func (s *Service) BuildSnapshot(ctx context.Context) ([]entity.CategoryGroup, error) {
	blacklist := s.store.Blacklist()

	type resolved struct {
		rec entity.ItemRecord
		qty int
	}

	byItem := make(map[entity.ItemID]*resolved)

	for _, slot := range s.inv.EnumerateSlots() {
		if slot.ItemID == 0 || slot.Quantity <= 0 {
			continue
		}

		rec, ok := s.catalog.Lookup(slot.ItemID)
		if !ok {
			continue
		}

		if existing, ok := byItem[slot.ItemID]; ok {
			existing.qty += slot.Quantity
			continue
		}

		byItem[slot.ItemID] = &resolved{rec: rec, qty: slot.Quantity}
	}

	items := lo.MapToSlice(byItem, func(_ entity.ItemID, r *resolved) entity.GroupedItem {
		return entity.GroupedItem{
			Record:      r.rec,
			Quantity:    r.qty,
			Discardable: eligibility.IsDiscardable(r.rec, blacklist),
		}
	})

	byCategory := lo.GroupBy(items, func(item entity.GroupedItem) uint16 {
		return item.Record.CategoryID
	})

	groups := lo.MapToSlice(byCategory, func(categoryID uint16, items []entity.GroupedItem) entity.CategoryGroup {
		sort.Slice(items, func(i, j int) bool {
			return items[i].Record.ID < items[j].Record.ID
		})

		return entity.CategoryGroup{
			CategoryID:   categoryID,
			CategoryName: items[0].Record.CategoryName,
			Items:        items,
			DistinctItems: len(items),
			TotalQuantity: lo.SumBy(items, func(item entity.GroupedItem) int {
				return item.Quantity
			}),
		}
	})

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].CategoryID < groups[j].CategoryID
	})

	if err := s.purgeSelection(ctx, groups); err != nil {
		return nil, fmt.Errorf("purge selection: %w", err)
	}

	return groups, nil
}

// purgeSelection drops selected ids that are not present in the snapshot as
// discardable. The selection must never silently diverge from current
// eligibility.
func (s *Service) purgeSelection(ctx context.Context, groups []entity.CategoryGroup) error {
	discardable := make(map[entity.ItemID]struct{})

	for _, group := range groups {
		for _, item := range group.Items {
			if item.Discardable {
				discardable[item.Record.ID] = struct{}{}
			}
		}
	}

	var stale []entity.ItemID

	for _, id := range s.store.Selection() {
		if _, ok := discardable[id]; !ok {
			stale = append(stale, id)
		}
	}

	if len(stale) == 0 {
		return nil
	}

	logger(ctx).Info("purging stale selection", "count", len(stale))

	if err := s.store.Remove(stale...); err != nil {
		return fmt.Errorf("store.Remove: %w", err)
	}

	return nil
}
