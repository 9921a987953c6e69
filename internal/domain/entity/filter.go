package entity

import "slices"

// ItemFilter is the explicit, finite set of item ids a discard run is
// allowed to touch. Immutable for the lifetime of a run.
type ItemFilter struct {
	ids map[ItemID]struct{}
}

func NewItemFilter(ids ...ItemID) ItemFilter {
	set := make(map[ItemID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return ItemFilter{ids: set}
}

func (f ItemFilter) Contains(id ItemID) bool {
	_, ok := f.ids[id]
	return ok
}

func (f ItemFilter) Len() int {
	return len(f.ids)
}

func (f ItemFilter) IDs() []ItemID {
	ids := make([]ItemID, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}
