package model

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Market keys accepted on the webhook payload.
const (
	MarketUAE     = "UAE"
	MarketAsia    = "Asia"
	MarketAmerica = "America"
)

// MarketCatalogTitles maps a webhook market key to the catalog title that
// identifies its price list on Shopify. Markets outside this table are
// skipped, never an error.
var MarketCatalogTitles = map[string]string{
	MarketUAE:     "United Arab Emirates",
	MarketAsia:    "Asia Market",
	MarketAmerica: "International Market",
}

// SyncRequest is the normalized input to one reconciliation. A nil pointer
// or empty string means "do not touch this field"; absence is distinct from
// zero.
type SyncRequest struct {
	SKU                 string
	DefaultPrice        *decimal.Decimal
	DefaultComparePrice *decimal.Decimal
	MarketPrices        map[string]*decimal.Decimal
	MarketComparePrices map[string]*decimal.Decimal
	Quantity            *int
	Title               string
	Barcode             string
	Size                string
}

func (r SyncRequest) Validate() error {
	if strings.TrimSpace(r.SKU) == "" {
		return &ValidationError{Field: "SKU", Reason: "missing"}
	}
	return nil
}

// MarketKeys returns the markets with a present price, in stable order.
func (r SyncRequest) MarketKeys() []string {
	keys := make([]string, 0, len(r.MarketPrices))
	for market, price := range r.MarketPrices {
		if price == nil {
			continue
		}
		keys = append(keys, market)
	}
	sort.Strings(keys)
	return keys
}

// VariantRef is the resolved identity of one catalog variant. It is valid
// for a single reconciliation only; a SKU may be reassigned between calls,
// so it is never cached.
type VariantRef struct {
	VariantGID      string
	ProductGID      string
	VariantID       int64
	ProductID       int64
	InventoryItemID int64
}

// MarketEntry is one row of the market directory, keyed by catalog title.
type MarketEntry struct {
	PriceListID  string
	CurrencyCode string
}

// SyncResult enumerates what one reconciliation did. It exists for
// observability; callers are free to ignore it.
type SyncResult struct {
	SKU             string   `json:"sku"`
	Written         []string `json:"written"`
	Skipped         []string `json:"skipped"`
	UnmappedMarkets []string `json:"unmappedMarkets,omitempty"`
}

func (r *SyncResult) AddWritten(field string) {
	r.Written = append(r.Written, field)
}

func (r *SyncResult) AddSkipped(field string) {
	r.Skipped = append(r.Skipped, field)
}

func (r *SyncResult) AddUnmappedMarket(market string) {
	r.UnmappedMarkets = append(r.UnmappedMarkets, market)
}
