package application

import "invclean/internal/domain/entity"

// Built-in data for running without CATALOG_PATH. The memory host starts
// from these slots so the HTTP surface has something to show.

func demoRecords() []entity.ItemRecord {
	return []entity.ItemRecord{
		{ID: 1, Name: "Gil", CategoryID: entity.CategoryCurrency, CategoryName: "Currency", IsIndisposable: true},
		{ID: 1001, Name: "Rat Tail", CategoryID: 10, CategoryName: "Reagent", CanBuyFromVendor: true},
		{ID: 1002, Name: "Bone Chip", CategoryID: 10, CategoryName: "Reagent", CanBuyFromVendor: true},
		{ID: 1003, Name: "Animal Glue", CategoryID: 10, CategoryName: "Reagent"},
		{ID: 2001, Name: "Bronze Sword", CategoryID: 20, CategoryName: "Arms"},
		{ID: 2002, Name: "Ash Lumber", CategoryID: 21, CategoryName: "Materials"},
		{ID: 3001, Name: "Soul Crystal", CategoryID: entity.CategoryCrystal, CategoryName: "Crystals"},
		{ID: 4001, Name: "Ceremony Ring", CategoryID: 30, CategoryName: "Accessories", IsUnique: true, IsUntradeable: true},
	}
}

func demoSlots() []entity.InventorySlotEntry {
	return []entity.InventorySlotEntry{
		{Container: 0, Slot: 0, ItemID: 1001, Quantity: 12},
		{Container: 0, Slot: 1, ItemID: 1002, Quantity: 3},
		{Container: 0, Slot: 2, ItemID: 1003, Quantity: 7},
		{Container: 0, Slot: 3, ItemID: 2001, Quantity: 1},
		{Container: 1, Slot: 0, ItemID: 2002, Quantity: 20},
		{Container: 1, Slot: 1, ItemID: 1001, Quantity: 5},
		{Container: 1, Slot: 2, ItemID: 3001, Quantity: 1},
		{Container: 2, Slot: 0, ItemID: 4001, Quantity: 1},
	}
}
