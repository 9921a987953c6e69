// Package pricing talks to the remote market-price service. All failures
// are non-fatal to callers: the fetcher degrades them to "no price".
package pricing

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"context"

	jsoniter "github.com/json-iterator/go"

	"invclean/internal/domain"
	"invclean/internal/domain/entity"
	"invclean/pkg/errcodes"
	"invclean/pkg/httpx"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const defaultMaxListings = 20

type Client struct {
	baseURL     string
	httpClient  *http.Client
	maxListings int
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: httpx.NewLoggingRoundTripper(http.DefaultTransport, httpx.WithLogFieldMaxLen(2048)),
		},
		maxListings: defaultMaxListings,
	}
}

type listingDTO struct {
	PricePerUnit int64  `json:"pricePerUnit"`
	Quantity     int    `json:"quantity"`
	HQ           bool   `json:"hq"`
	WorldName    string `json:"worldName"`
}

type marketBoardDTO struct {
	ItemID         entity.ItemID `json:"itemID"`
	LastUploadTime int64         `json:"lastUploadTime"`
	Listings       []listingDTO  `json:"listings"`
}

// MarketBoard queries current listings for one item in the given scope
// (a world name or a region name).
func (c *Client) MarketBoard(ctx context.Context, scope string, itemID entity.ItemID) (entity.PriceInfo, error) {
	url := fmt.Sprintf("%s/api/v2/%s/%d?listings=%d", c.baseURL, scope, itemID, c.maxListings)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return entity.PriceInfo{}, fmt.Errorf("http.NewRequest: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return entity.PriceInfo{}, fmt.Errorf("httpClient.Do: %w", err)
	}

	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return entity.PriceInfo{}, domain.NewError(errcodes.ItemNotFound,
			"no market data for item "+strconv.Itoa(int(itemID)))
	case http.StatusTooManyRequests:
		return entity.PriceInfo{}, domain.NewError(errcodes.RateLimited,
			"pricing service rate limited")
	default:
		return entity.PriceInfo{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return entity.PriceInfo{}, fmt.Errorf("io.ReadAll: %w", err)
	}

	var dto marketBoardDTO

	if err := json.Unmarshal(body, &dto); err != nil {
		return entity.PriceInfo{}, fmt.Errorf("json.Unmarshal: %w", err)
	}

	info := entity.PriceInfo{
		ItemID:     itemID,
		Scope:      scope,
		FetchedAt:  time.Now(),
		LastUpload: time.UnixMilli(dto.LastUploadTime),
	}

	for _, l := range dto.Listings {
		info.Listings = append(info.Listings, entity.Listing{
			PricePerUnit: l.PricePerUnit,
			Quantity:     l.Quantity,
			HQ:           l.HQ,
			World:        l.WorldName,
		})
	}

	if len(info.Listings) > 0 {
		info.PricePerUnit = info.Listings[0].PricePerUnit
		info.HQ = info.Listings[0].HQ
	}

	return info, nil
}

// IsNotFound reports a not-found response from the pricing service.
func IsNotFound(err error) bool {
	code, ok := domain.GetCode(err)
	return ok && code == errcodes.ItemNotFound
}

// IsRateLimited reports an explicit rate-limit signal. Rate limits get a
// longer backoff than generic failures and are never retried inline.
func IsRateLimited(err error) bool {
	code, ok := domain.GetCode(err)
	return ok && code == errcodes.RateLimited
}
