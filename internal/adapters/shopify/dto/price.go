package dto

type MoneyNode struct {
	Amount       string `json:"amount,omitempty"`
	CurrencyCode string `json:"currencyCode,omitempty"`
}

type PriceListPriceNode struct {
	Price          MoneyNode  `json:"price,omitempty"`
	CompareAtPrice *MoneyNode `json:"compareAtPrice,omitempty"`
}

type PriceListPricesQueryData struct {
	PriceList *struct {
		Prices struct {
			Nodes []PriceListPriceNode `json:"nodes,omitempty"`
		} `json:"prices,omitempty"`
	} `json:"priceList,omitempty"`
}

type PriceListFixedPricesAddData struct {
	PriceListFixedPricesAdd struct {
		UserErrors []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"priceListFixedPricesAdd"`
}
