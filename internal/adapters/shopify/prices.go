package shopify

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"shopify-sync/internal/adapters/shopify/dto"
)

// FixedPrice is one price-list row for a variant.
type FixedPrice struct {
	Amount         decimal.Decimal
	CompareAtPrice *decimal.Decimal
}

// FixedPriceInput writes one fixed price on a price list.
type FixedPriceInput struct {
	VariantGID     string
	Amount         decimal.Decimal
	CompareAtPrice *decimal.Decimal
	CurrencyCode   string
}

// PriceListFixedPrice reads the current fixed price for a variant on a
// price list, taking the first matching row. A nil result means no fixed
// price exists yet.
func (c *Client) PriceListFixedPrice(ctx context.Context, priceListID, variantGID string) (*FixedPrice, error) {
	priceListID = strings.TrimSpace(priceListID)
	variantGID = strings.TrimSpace(variantGID)
	if priceListID == "" || variantGID == "" {
		return nil, upstream("priceList", errors.New("price list id and variant id are required"))
	}

	query := `
	query priceListPrices($pl: ID!, $vid: String!) {
		priceList(id: $pl) {
			prices(first: 5, query: $vid) {
				nodes {
					price { amount currencyCode }
					compareAtPrice { amount currencyCode }
				}
			}
		}
	}`

	var data dto.PriceListPricesQueryData
	if err := c.graphqlRequest(ctx, "priceList", query, map[string]any{
		"pl":  priceListID,
		"vid": variantGID,
	}, &data); err != nil {
		return nil, err
	}
	if data.PriceList == nil || len(data.PriceList.Prices.Nodes) == 0 {
		return nil, nil
	}

	node := data.PriceList.Prices.Nodes[0]
	amount, err := decimal.NewFromString(strings.TrimSpace(node.Price.Amount))
	if err != nil {
		return nil, upstream("priceList", errors.New("unparseable price amount"))
	}
	price := FixedPrice{Amount: amount}
	if node.CompareAtPrice != nil {
		if compare, err := decimal.NewFromString(strings.TrimSpace(node.CompareAtPrice.Amount)); err == nil {
			price.CompareAtPrice = &compare
		}
	}
	return &price, nil
}

// AddPriceListFixedPrice upserts one fixed price on a price list in the
// price list's settlement currency.
func (c *Client) AddPriceListFixedPrice(ctx context.Context, priceListID string, price FixedPriceInput) error {
	priceListID = strings.TrimSpace(priceListID)
	if priceListID == "" {
		return upstream("priceListFixedPricesAdd", errors.New("price list id is required"))
	}
	if strings.TrimSpace(price.VariantGID) == "" {
		return upstream("priceListFixedPricesAdd", errors.New("variant id is required"))
	}

	query := `
	mutation priceListFixedPricesAdd($priceListId: ID!, $prices: [PriceListPriceInput!]!) {
		priceListFixedPricesAdd(priceListId: $priceListId, prices: $prices) {
			userErrors { field message }
		}
	}`

	entry := map[string]any{
		"variantId": price.VariantGID,
		"price": map[string]any{
			"amount":       formatMoneyAmount(price.Amount),
			"currencyCode": price.CurrencyCode,
		},
	}
	if price.CompareAtPrice != nil {
		entry["compareAtPrice"] = map[string]any{
			"amount":       formatMoneyAmount(*price.CompareAtPrice),
			"currencyCode": price.CurrencyCode,
		}
	}

	var data dto.PriceListFixedPricesAddData
	if err := c.graphqlRequest(ctx, "priceListFixedPricesAdd", query, map[string]any{
		"priceListId": priceListID,
		"prices":      []map[string]any{entry},
	}, &data); err != nil {
		return err
	}
	return userErrorsToError("priceListFixedPricesAdd", data.PriceListFixedPricesAdd.UserErrors)
}
