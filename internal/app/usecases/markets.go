package usecases

import (
	"context"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"shopify-sync/internal/adapters/shopify"
	"shopify-sync/internal/domain/model"
	"shopify-sync/internal/logging"
)

const marketDirectoryCacheKey = "market_directory"

// MarketDirectory maps catalog titles to price-list entries. The mapping
// is fetched once and held for the process lifetime; catalogs added or
// renamed on Shopify after warm-up are invisible until restart.
type MarketDirectory struct {
	markets shopify.MarketService
	logger  logging.LoggerService
	cache   *gocache.Cache
	mu      sync.Mutex
}

func NewMarketDirectory(markets shopify.MarketService, logger logging.LoggerService) *MarketDirectory {
	return &MarketDirectory{
		markets: markets,
		logger:  logger,
		cache:   gocache.New(gocache.NoExpiration, 0),
	}
}

// ResolveMarkets returns the title->entry mapping, warming the cache on
// first use. The mutex keeps concurrent first callers from issuing
// duplicate directory queries. A failed warm-up caches nothing, so the
// next call retries.
func (d *MarketDirectory) ResolveMarkets(ctx context.Context) (map[string]model.MarketEntry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if cached, ok := d.cache.Get(marketDirectoryCacheKey); ok {
		return cached.(map[string]model.MarketEntry), nil
	}

	catalogs, err := d.markets.ListMarketCatalogs(ctx)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]model.MarketEntry)
	for _, catalog := range catalogs {
		if !strings.EqualFold(catalog.Status, "ACTIVE") || catalog.PriceListID == "" {
			continue
		}
		entries[catalog.Title] = model.MarketEntry{
			PriceListID:  catalog.PriceListID,
			CurrencyCode: catalog.Currency,
		}
	}

	d.cache.Set(marketDirectoryCacheKey, entries, gocache.NoExpiration)
	if d.logger != nil {
		d.logger.Log("market directory warmed")
	}
	return entries, nil
}
