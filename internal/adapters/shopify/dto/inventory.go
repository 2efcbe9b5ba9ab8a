package dto

type RestLocation struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Active bool   `json:"active,omitempty"`
}

type LocationsEnvelope struct {
	Locations []RestLocation `json:"locations,omitempty"`
}

type InventoryLevelSetPayload struct {
	LocationID      int64 `json:"location_id"`
	InventoryItemID int64 `json:"inventory_item_id"`
	Available       int   `json:"available"`
}

type InventoryLevelEnvelope struct {
	InventoryLevel struct {
		InventoryItemID int64 `json:"inventory_item_id,omitempty"`
		LocationID      int64 `json:"location_id,omitempty"`
		Available       int   `json:"available,omitempty"`
	} `json:"inventory_level,omitempty"`
}
