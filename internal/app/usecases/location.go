package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	gocache "github.com/patrickmn/go-cache"

	"shopify-sync/internal/adapters/shopify"
	"shopify-sync/internal/domain/model"
	"shopify-sync/internal/logging"
)

const primaryLocationCacheKey = "primary_location"

// LocationResolver picks the inventory-tracking location. An operator
// override is always authoritative and never verified against Shopify;
// otherwise the first reported location is cached for the process
// lifetime.
type LocationResolver struct {
	inventory shopify.InventoryService
	logger    logging.LoggerService
	override  int64
	cache     *gocache.Cache
	mu        sync.Mutex
}

func NewLocationResolver(inventory shopify.InventoryService, override string, logger logging.LoggerService) (*LocationResolver, error) {
	resolver := &LocationResolver{
		inventory: inventory,
		logger:    logger,
		cache:     gocache.New(gocache.NoExpiration, 0),
	}
	override = strings.TrimSpace(override)
	if override != "" {
		id, err := strconv.ParseInt(override, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid location override %q: %w", override, err)
		}
		resolver.override = id
	}
	return resolver, nil
}

func (r *LocationResolver) ResolveLocation(ctx context.Context) (int64, error) {
	if r.override != 0 {
		return r.override, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache.Get(primaryLocationCacheKey); ok {
		return cached.(int64), nil
	}

	locations, err := r.inventory.ListLocations(ctx)
	if err != nil {
		return 0, err
	}
	if len(locations) == 0 {
		return 0, &model.UpstreamError{Op: "listLocations", Err: errors.New("no locations returned")}
	}

	locationID := locations[0].ID
	r.cache.Set(primaryLocationCacheKey, locationID, gocache.NoExpiration)
	if r.logger != nil {
		r.logger.Log(fmt.Sprintf("primary location resolved id=%d", locationID))
	}
	return locationID, nil
}
