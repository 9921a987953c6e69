package server

import (
	"time"

	"invclean/internal/domain/entity"
	"invclean/pkg/lox"
)

type selectionResponse struct {
	ItemIDs []entity.ItemID `json:"itemIds"`
}

type replaceSelectionRequest struct {
	ItemIDs []uint32 `json:"itemIds" validate:"required"`
}

type startRunRequest struct {
	ItemIDs []uint32 `json:"itemIds" validate:"required,min=1,dive,gt=0"`
}

type runStartedResponse struct {
	RunID string `json:"runId"`
}

type runResultResponse struct {
	RunID    string `json:"runId"`
	State    string `json:"state"`
	Disposed int    `json:"disposed"`
	Reason   string `json:"reason,omitempty"`
}

type activeRunResponse struct {
	Active     bool               `json:"active"`
	RunID      string             `json:"runId,omitempty"`
	LastResult *runResultResponse `json:"lastResult,omitempty"`
}

type inventoryResponse struct {
	Groups []entity.CategoryGroup `json:"groups"`
}

type commandRequest struct {
	Text string `json:"text" validate:"required"`
}

type listingResponse struct {
	PricePerUnit int64  `json:"pricePerUnit"`
	Quantity     int    `json:"quantity"`
	HQ           bool   `json:"hq"`
	World        string `json:"world"`
}

type priceResponse struct {
	ItemID       entity.ItemID     `json:"itemId"`
	PricePerUnit int64             `json:"pricePerUnit"`
	HQ           bool              `json:"hq"`
	Scope        string            `json:"scope"`
	FetchedAt    time.Time         `json:"fetchedAt"`
	LastUpload   time.Time         `json:"lastUpload"`
	Listings     []listingResponse `json:"listings"`
}

func newPriceResponse(info entity.PriceInfo) priceResponse {
	return priceResponse{
		ItemID:       info.ItemID,
		PricePerUnit: info.PricePerUnit,
		HQ:           info.HQ,
		Scope:        info.Scope,
		FetchedAt:    info.FetchedAt,
		LastUpload:   info.LastUpload,
		Listings: lox.Map(info.Listings, func(l entity.Listing) listingResponse {
			return listingResponse{
				PricePerUnit: l.PricePerUnit,
				Quantity:     l.Quantity,
				HQ:           l.HQ,
				World:        l.World,
			}
		}),
	}
}
