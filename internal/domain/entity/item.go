package entity

// ItemID is the numeric catalog identifier of an item. Identity of an item
// is this id alone; every other ItemRecord field is derived from static
// game data.
type ItemID uint32

// Category ids with special meaning for the discard rules. Everything in
// these categories stays in the bags no matter what the user selects.
const (
	CategoryUnknown      uint16 = 0
	CategoryCurrency     uint16 = 100
	CategoryCrystal      uint16 = 101
	CategoryUnobtainable uint16 = 102
)

// ItemRecord is the immutable per-catalog-entry view of an item.
type ItemRecord struct {
	ID           ItemID `json:"id"`
	Name         string `json:"name"`
	IconID       uint16 `json:"icon_id"`
	CategoryID   uint16 `json:"category_id"`
	CategoryName string `json:"category_name"`
	ItemLevel    int    `json:"item_level"`

	IsUnique         bool `json:"is_unique"`
	IsUntradeable    bool `json:"is_untradeable"`
	IsIndisposable   bool `json:"is_indisposable"`
	CanBuyFromVendor bool `json:"can_buy_from_vendor"`
}
