package shopify

import (
	"context"
	"strings"

	"shopify-sync/internal/adapters/shopify/dto"
)

// MarketCatalog is one market-type catalog row with its price list, as
// returned by the directory query.
type MarketCatalog struct {
	Title       string
	Status      string
	PriceListID string
	Currency    string
}

const marketCatalogsPageSize = 20

// ListMarketCatalogs lists up to 20 market-type catalogs with their status
// and associated price list. Filtering to active catalogs is the caller's
// concern.
func (c *Client) ListMarketCatalogs(ctx context.Context) ([]MarketCatalog, error) {
	query := `
	query marketCatalogs($first: Int!) {
		catalogs(first: $first, type: MARKET) {
			nodes {
				title
				status
				priceList { id currency }
			}
		}
	}`

	var data dto.MarketCatalogsQueryData
	if err := c.graphqlRequest(ctx, "catalogs", query, map[string]any{
		"first": marketCatalogsPageSize,
	}, &data); err != nil {
		return nil, err
	}

	catalogs := make([]MarketCatalog, 0, len(data.Catalogs.Nodes))
	for _, node := range data.Catalogs.Nodes {
		catalog := MarketCatalog{
			Title:  strings.TrimSpace(node.Title),
			Status: strings.TrimSpace(node.Status),
		}
		if node.PriceList != nil {
			catalog.PriceListID = strings.TrimSpace(node.PriceList.ID)
			catalog.Currency = strings.TrimSpace(node.PriceList.Currency)
		}
		catalogs = append(catalogs, catalog)
	}
	return catalogs, nil
}
