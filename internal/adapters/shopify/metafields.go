package shopify

import (
	"context"
	"errors"
	"strings"

	"shopify-sync/internal/adapters/shopify/dto"
)

const (
	metafieldTypeText      = "single_line_text_field"
	sizeMetafieldNamespace = "custom"
	sizeMetafieldKey       = "size"
)

// SetVariantSize writes the size attribute as a single-line text metafield
// on the variant. The write is unconditional; there is no cheap read path
// to diff against.
func (c *Client) SetVariantSize(ctx context.Context, variantGID, size string) error {
	variantGID = strings.TrimSpace(variantGID)
	if variantGID == "" {
		return upstream("metafieldsSet", errors.New("variant id is required"))
	}
	size = strings.TrimSpace(size)
	if size == "" {
		return nil
	}

	query := `
	mutation metafieldsSet($metafields: [MetafieldsSetInput!]!) {
		metafieldsSet(metafields: $metafields) {
			metafields { id namespace key value type }
			userErrors { field message }
		}
	}`

	payload := []map[string]any{{
		"ownerId":   variantGID,
		"namespace": sizeMetafieldNamespace,
		"key":       sizeMetafieldKey,
		"type":      metafieldTypeText,
		"value":     size,
	}}

	var data dto.MetafieldsSetData
	if err := c.graphqlRequest(ctx, "metafieldsSet", query, map[string]any{"metafields": payload}, &data); err != nil {
		return err
	}
	return userErrorsToError("metafieldsSet", data.MetafieldsSet.UserErrors)
}
