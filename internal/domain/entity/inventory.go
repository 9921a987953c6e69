package entity

// InventorySlotEntry is a transient read of one inventory slot. The host
// mutates slots at any time, so nothing holds an entry past a single
// polling tick.
type InventorySlotEntry struct {
	Container int    `json:"container"`
	Slot      int    `json:"slot"`
	ItemID    ItemID `json:"item_id"`
	Quantity  int    `json:"quantity"`
}

// GroupedItem is one distinct item inside a CategoryGroup with its summed
// quantity and the eligibility decision computed for this snapshot.
type GroupedItem struct {
	Record      ItemRecord `json:"record"`
	Quantity    int        `json:"quantity"`
	Discardable bool       `json:"discardable"`
}

// CategoryGroup aggregates a snapshot's items by category. Groups are
// rebuilt from scratch on every refresh, never patched in place.
type CategoryGroup struct {
	CategoryID    uint16        `json:"category_id"`
	CategoryName  string        `json:"category_name"`
	Items         []GroupedItem `json:"items"`
	DistinctItems int           `json:"distinct_items"`
	TotalQuantity int           `json:"total_quantity"`
}
