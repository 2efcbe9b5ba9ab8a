package dto

type ProductVariantSearchData struct {
	ProductVariants struct {
		Nodes []struct {
			ID      string `json:"id,omitempty"`
			SKU     string `json:"sku,omitempty"`
			Product struct {
				ID string `json:"id,omitempty"`
			} `json:"product,omitempty"`
		} `json:"nodes,omitempty"`
	} `json:"productVariants"`
}

// REST resource shapes. Money comes back as decimal strings;
// compare_at_price may be null.
type RestVariant struct {
	ID              int64   `json:"id,omitempty"`
	ProductID       int64   `json:"product_id,omitempty"`
	SKU             string  `json:"sku,omitempty"`
	Title           string  `json:"title,omitempty"`
	Barcode         string  `json:"barcode,omitempty"`
	Price           string  `json:"price,omitempty"`
	CompareAtPrice  *string `json:"compare_at_price,omitempty"`
	InventoryItemID int64   `json:"inventory_item_id,omitempty"`
}

type VariantEnvelope struct {
	Variant RestVariant `json:"variant"`
}

type VariantUpdatePayload struct {
	Variant VariantUpdateFields `json:"variant"`
}

// VariantUpdateFields carries only the fields being written; omitted
// fields are left untouched by Shopify.
type VariantUpdateFields struct {
	ID             int64   `json:"id"`
	Price          *string `json:"price,omitempty"`
	CompareAtPrice *string `json:"compare_at_price,omitempty"`
	Title          *string `json:"title,omitempty"`
	Barcode        *string `json:"barcode,omitempty"`
}

type ProductUpdatePayload struct {
	Product ProductUpdateFields `json:"product"`
}

type ProductUpdateFields struct {
	ID    int64   `json:"id"`
	Title *string `json:"title,omitempty"`
}
