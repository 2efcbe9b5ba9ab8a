package shopify

import (
	"context"
	"errors"
	"net/http"

	"shopify-sync/internal/adapters/shopify/dto"
)

// Location is one inventory-tracking location.
type Location struct {
	ID     int64
	Name   string
	Active bool
}

func (c *Client) ListLocations(ctx context.Context) ([]Location, error) {
	var envelope dto.LocationsEnvelope
	if err := c.restRequest(ctx, "listLocations", http.MethodGet, "locations.json", nil, &envelope); err != nil {
		return nil, err
	}

	locations := make([]Location, 0, len(envelope.Locations))
	for _, node := range envelope.Locations {
		locations = append(locations, Location{
			ID:     node.ID,
			Name:   node.Name,
			Active: node.Active,
		})
	}
	return locations, nil
}

// SetInventoryLevel sets the absolute available quantity for one
// (inventory item, location) pair. Always an overwrite, never a delta.
func (c *Client) SetInventoryLevel(ctx context.Context, inventoryItemID, locationID int64, available int) error {
	if inventoryItemID <= 0 || locationID <= 0 {
		return upstream("inventoryLevelSet", errors.New("inventory item id and location id are required"))
	}

	payload := dto.InventoryLevelSetPayload{
		LocationID:      locationID,
		InventoryItemID: inventoryItemID,
		Available:       available,
	}
	return c.restRequest(ctx, "inventoryLevelSet", http.MethodPost, "inventory_levels/set.json", payload, nil)
}
