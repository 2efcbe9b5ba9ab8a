package shopify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shopify-sync/internal/adapters/shopify/dto"
	"shopify-sync/internal/domain/model"
)

// Variant is the resource-level view of a variant, with money parsed to
// decimals.
type Variant struct {
	ID              int64
	ProductID       int64
	SKU             string
	InventoryItemID int64
	Price           decimal.Decimal
	CompareAtPrice  *decimal.Decimal
}

// VariantUpdate carries only the fields to write; nil means untouched.
type VariantUpdate struct {
	Price          *decimal.Decimal
	CompareAtPrice *decimal.Decimal
	Title          *string
	Barcode        *string
}

func (u VariantUpdate) isEmpty() bool {
	return u.Price == nil && u.CompareAtPrice == nil && u.Title == nil && u.Barcode == nil
}

// FindVariantBySKU resolves a SKU to its variant and product identifiers
// with exact-match semantics. Returns model.NotFoundError when no variant
// matches.
func (c *Client) FindVariantBySKU(ctx context.Context, sku string) (model.VariantRef, error) {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return model.VariantRef{}, &model.ValidationError{Field: "SKU", Reason: "missing"}
	}

	query := `
	query productVariantBySku($first: Int!, $query: String!) {
		productVariants(first: $first, query: $query) {
			nodes { id sku product { id } }
		}
	}`

	var data dto.ProductVariantSearchData
	if err := c.graphqlRequest(ctx, "productVariants", query, map[string]any{
		"first": 1,
		"query": buildSearchQuery("sku", sku),
	}, &data); err != nil {
		return model.VariantRef{}, err
	}
	if len(data.ProductVariants.Nodes) == 0 {
		return model.VariantRef{}, &model.NotFoundError{SKU: sku}
	}

	node := data.ProductVariants.Nodes[0]
	variantGID := strings.TrimSpace(node.ID)
	productGID := strings.TrimSpace(node.Product.ID)

	variantID, err := gidNumericID(variantGID)
	if err != nil {
		return model.VariantRef{}, upstream("productVariants", err)
	}
	productID, err := gidNumericID(productGID)
	if err != nil {
		return model.VariantRef{}, upstream("productVariants", err)
	}

	return model.VariantRef{
		VariantGID: variantGID,
		ProductGID: productGID,
		VariantID:  variantID,
		ProductID:  productID,
	}, nil
}

func (c *Client) GetVariant(ctx context.Context, variantID int64) (Variant, error) {
	if variantID <= 0 {
		return Variant{}, upstream("getVariant", errors.New("variant id is required"))
	}

	var envelope dto.VariantEnvelope
	path := fmt.Sprintf("variants/%d.json", variantID)
	if err := c.restRequest(ctx, "getVariant", http.MethodGet, path, nil, &envelope); err != nil {
		return Variant{}, err
	}

	price, err := decimal.NewFromString(strings.TrimSpace(envelope.Variant.Price))
	if err != nil {
		return Variant{}, upstream("getVariant", fmt.Errorf("unparseable price %q", envelope.Variant.Price))
	}

	variant := Variant{
		ID:              envelope.Variant.ID,
		ProductID:       envelope.Variant.ProductID,
		SKU:             envelope.Variant.SKU,
		InventoryItemID: envelope.Variant.InventoryItemID,
		Price:           price,
	}
	if envelope.Variant.CompareAtPrice != nil {
		if compare, err := decimal.NewFromString(strings.TrimSpace(*envelope.Variant.CompareAtPrice)); err == nil {
			variant.CompareAtPrice = &compare
		}
	}
	return variant, nil
}

func (c *Client) UpdateVariant(ctx context.Context, variantID int64, update VariantUpdate) error {
	if variantID <= 0 {
		return upstream("updateVariant", errors.New("variant id is required"))
	}
	if update.isEmpty() {
		return nil
	}

	fields := dto.VariantUpdateFields{ID: variantID}
	if update.Price != nil {
		fields.Price = stringPtr(formatMoneyAmount(*update.Price))
	}
	if update.CompareAtPrice != nil {
		fields.CompareAtPrice = stringPtr(formatMoneyAmount(*update.CompareAtPrice))
	}
	fields.Title = update.Title
	fields.Barcode = update.Barcode

	path := fmt.Sprintf("variants/%d.json", variantID)
	return c.restRequest(ctx, "updateVariant", http.MethodPut, path, dto.VariantUpdatePayload{Variant: fields}, nil)
}

func (c *Client) UpdateProductTitle(ctx context.Context, productID int64, title string) error {
	if productID <= 0 {
		return upstream("updateProduct", errors.New("product id is required"))
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil
	}

	payload := dto.ProductUpdatePayload{
		Product: dto.ProductUpdateFields{
			ID:    productID,
			Title: &title,
		},
	}
	path := fmt.Sprintf("products/%d.json", productID)
	return c.restRequest(ctx, "updateProduct", http.MethodPut, path, payload, nil)
}

func gidNumericID(gid string) (int64, error) {
	gid = strings.TrimSpace(gid)
	if gid == "" {
		return 0, errors.New("empty gid")
	}
	parts := strings.Split(gid, "/")
	id, err := strconv.ParseInt(parts[len(parts)-1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unparseable gid %q", gid)
	}
	return id, nil
}

func formatMoneyAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}

func stringPtr(s string) *string {
	return &s
}
