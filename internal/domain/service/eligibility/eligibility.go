// Package eligibility decides whether an item may be removed from the
// inventory. Decisions are pure functions of item metadata plus the user
// blacklist; any ambiguity resolves to "not discardable".
package eligibility

import "invclean/internal/domain/entity"

// IsDiscardable reports whether the rules permit discarding the item.
// Blacklist membership always wins over every other fact.
func IsDiscardable(rec entity.ItemRecord, blacklist entity.Blacklist) bool {
	if blacklist.Contains(rec.ID) {
		return false
	}

	return IsSelectable(rec)
}

// IsSelectable is the blacklist-ignoring variant, used where the question
// is "can this item even be offered for selection".
func IsSelectable(rec entity.ItemRecord) bool {
	if rec.ID == 0 || rec.Name == "" {
		return false
	}

	switch rec.CategoryID {
	case entity.CategoryUnknown, entity.CategoryCurrency, entity.CategoryCrystal, entity.CategoryUnobtainable:
		return false
	}

	if rec.IsIndisposable {
		return false
	}

	// An item that is unique, untradeable and not sold by any vendor is
	// unrecoverable once discarded.
	if rec.IsUnique && rec.IsUntradeable && !rec.CanBuyFromVendor {
		return false
	}

	return true
}
