package dto

type PriceListNode struct {
	ID       string `json:"id,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type MarketCatalogNode struct {
	Title     string         `json:"title,omitempty"`
	Status    string         `json:"status,omitempty"`
	PriceList *PriceListNode `json:"priceList,omitempty"`
}

type MarketCatalogsQueryData struct {
	Catalogs struct {
		Nodes []MarketCatalogNode `json:"nodes,omitempty"`
	} `json:"catalogs"`
}
