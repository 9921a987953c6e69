package entity

import "time"

// WorldContext names the narrow and broad query scopes for the remote
// pricing service. World is a single server, Region a cluster sharing an
// economy.
type WorldContext struct {
	World  string
	Region string
}

type Listing struct {
	PricePerUnit int64  `json:"price_per_unit"`
	Quantity     int    `json:"quantity"`
	HQ           bool   `json:"hq"`
	World        string `json:"world"`
}

// PriceInfo is one positive price-cache entry.
type PriceInfo struct {
	ItemID       ItemID    `json:"item_id"`
	PricePerUnit int64     `json:"price_per_unit"`
	HQ           bool      `json:"hq"`
	Scope        string    `json:"scope"`
	FetchedAt    time.Time `json:"fetched_at"`
	LastUpload   time.Time `json:"last_upload"`
	Listings     []Listing `json:"listings,omitempty"`
}
