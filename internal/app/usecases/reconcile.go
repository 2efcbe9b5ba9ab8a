package usecases

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"shopify-sync/internal/adapters/shopify"
	"shopify-sync/internal/domain/model"
	"shopify-sync/internal/logging"
	"shopify-sync/internal/metrics"
)

// ReconcileService runs one webhook-driven reconciliation.
type ReconcileService interface {
	Reconcile(ctx context.Context, req model.SyncRequest) (model.SyncResult, error)
}

// Reconciler resolves a SKU to platform identifiers, reads current state,
// and applies only the changed fields. Steps run strictly in sequence;
// the first remote failure aborts the rest without rolling back earlier
// writes.
//
// Reconciliations are serialized per SKU inside this process, but the
// remote read-then-write chain is not atomic: a write can still be based
// on a stale read when another process touches the same variant. Known
// race, accepted.
type Reconciler struct {
	variants   shopify.VariantService
	prices     shopify.MarketService
	inventory  shopify.InventoryService
	metafields shopify.MetafieldService
	directory  *MarketDirectory
	location   *LocationResolver
	logger     logging.LoggerService

	// One mutex per SKU; entries are never evicted. Cardinality is
	// bounded by the catalog size.
	skuLocks sync.Map
}

func NewReconciler(
	variants shopify.VariantService,
	prices shopify.MarketService,
	inventory shopify.InventoryService,
	metafields shopify.MetafieldService,
	directory *MarketDirectory,
	location *LocationResolver,
	logger logging.LoggerService,
) *Reconciler {
	return &Reconciler{
		variants:   variants,
		prices:     prices,
		inventory:  inventory,
		metafields: metafields,
		directory:  directory,
		location:   location,
		logger:     logger,
	}
}

func (r *Reconciler) Reconcile(ctx context.Context, req model.SyncRequest) (model.SyncResult, error) {
	if err := req.Validate(); err != nil {
		return model.SyncResult{}, err
	}
	sku := strings.TrimSpace(req.SKU)

	unlock := r.lockSKU(sku)
	defer unlock()

	result := model.SyncResult{SKU: sku}

	ref, err := r.resolveVariant(ctx, sku)
	if err != nil {
		return result, err
	}

	if err := r.syncDescriptiveFields(ctx, req, ref, &result); err != nil {
		return result, err
	}
	if err := r.syncDefaultPrice(ctx, req, ref, &result); err != nil {
		return result, err
	}
	if err := r.syncInventory(ctx, req, ref, &result); err != nil {
		return result, err
	}
	if err := r.syncMarketPrices(ctx, req, ref, &result); err != nil {
		return result, err
	}

	if r.logger != nil {
		r.logger.LogSuccess(fmt.Sprintf(
			"sync completed sku=%s written=%d skipped=%d unmapped=%d",
			sku, len(result.Written), len(result.Skipped), len(result.UnmappedMarkets),
		))
	}
	return result, nil
}

// resolveVariant produces the VariantRef for this reconciliation. Never
// cached across requests; a SKU may be reassigned between calls.
func (r *Reconciler) resolveVariant(ctx context.Context, sku string) (model.VariantRef, error) {
	ref, err := r.variants.FindVariantBySKU(ctx, sku)
	if err != nil {
		return model.VariantRef{}, err
	}

	variant, err := r.variants.GetVariant(ctx, ref.VariantID)
	if err != nil {
		return model.VariantRef{}, err
	}
	ref.InventoryItemID = variant.InventoryItemID
	return ref, nil
}

// syncDescriptiveFields writes title, barcode and size unconditionally
// when present. The platform exposes no cheap read path for these fields,
// so they are never diffed.
func (r *Reconciler) syncDescriptiveFields(ctx context.Context, req model.SyncRequest, ref model.VariantRef, result *model.SyncResult) error {
	title := strings.TrimSpace(req.Title)
	barcode := strings.TrimSpace(req.Barcode)
	size := strings.TrimSpace(req.Size)

	if title != "" || barcode != "" {
		update := shopify.VariantUpdate{}
		if title != "" {
			update.Title = &title
		}
		if barcode != "" {
			update.Barcode = &barcode
		}
		if err := r.variants.UpdateVariant(ctx, ref.VariantID, update); err != nil {
			return err
		}
		if title != "" {
			markWritten(result, "title")
		}
		if barcode != "" {
			markWritten(result, "barcode")
		}
	}

	if title != "" {
		if err := r.variants.UpdateProductTitle(ctx, ref.ProductID, title); err != nil {
			return err
		}
	}

	if size != "" {
		if err := r.metafields.SetVariantSize(ctx, ref.VariantGID, size); err != nil {
			return err
		}
		markWritten(result, "size")
	}

	return nil
}

// syncDefaultPrice diffs the proposed default price against the current
// one and writes only on a numeric difference.
func (r *Reconciler) syncDefaultPrice(ctx context.Context, req model.SyncRequest, ref model.VariantRef, result *model.SyncResult) error {
	if req.DefaultPrice == nil {
		return nil
	}

	variant, err := r.variants.GetVariant(ctx, ref.VariantID)
	if err != nil {
		return err
	}

	if variant.Price.Equal(*req.DefaultPrice) {
		result.AddSkipped("default_price")
		if r.logger != nil {
			r.logger.Log(fmt.Sprintf("default price unchanged sku=%s", result.SKU))
		}
		return nil
	}

	update := shopify.VariantUpdate{
		Price:          req.DefaultPrice,
		CompareAtPrice: req.DefaultComparePrice,
	}
	if err := r.variants.UpdateVariant(ctx, ref.VariantID, update); err != nil {
		return err
	}
	markWritten(result, "default_price")
	return nil
}

// syncInventory sets the absolute on-hand quantity. Zero is a present
// value and is written; only absence skips. Never diffed against current
// stock.
func (r *Reconciler) syncInventory(ctx context.Context, req model.SyncRequest, ref model.VariantRef, result *model.SyncResult) error {
	if req.Quantity == nil {
		return nil
	}

	locationID, err := r.location.ResolveLocation(ctx)
	if err != nil {
		return err
	}
	if err := r.inventory.SetInventoryLevel(ctx, ref.InventoryItemID, locationID, *req.Quantity); err != nil {
		return err
	}
	markWritten(result, "inventory")
	return nil
}

// syncMarketPrices writes each mapped market's fixed price when it is
// absent or numerically different. Unmapped markets are skipped, not an
// error, and a market write never substitutes for a default-price write.
func (r *Reconciler) syncMarketPrices(ctx context.Context, req model.SyncRequest, ref model.VariantRef, result *model.SyncResult) error {
	marketKeys := req.MarketKeys()
	if len(marketKeys) == 0 {
		return nil
	}

	directory, err := r.directory.ResolveMarkets(ctx)
	if err != nil {
		return err
	}

	for _, market := range marketKeys {
		proposed := req.MarketPrices[market]

		catalogTitle, ok := model.MarketCatalogTitles[market]
		if !ok {
			result.AddUnmappedMarket(market)
			continue
		}
		entry, ok := directory[catalogTitle]
		if !ok {
			result.AddUnmappedMarket(market)
			if r.logger != nil {
				r.logger.LogWarning(fmt.Sprintf("market %s has no active price list, skipping", market))
			}
			continue
		}

		current, err := r.prices.PriceListFixedPrice(ctx, entry.PriceListID, ref.VariantGID)
		if err != nil {
			return err
		}
		if current != nil && current.Amount.Equal(*proposed) {
			result.AddSkipped("market_price:" + market)
			continue
		}

		input := shopify.FixedPriceInput{
			VariantGID:     ref.VariantGID,
			Amount:         *proposed,
			CompareAtPrice: req.MarketComparePrices[market],
			CurrencyCode:   entry.CurrencyCode,
		}
		if err := r.prices.AddPriceListFixedPrice(ctx, entry.PriceListID, input); err != nil {
			return err
		}
		markWritten(result, "market_price:"+market)
	}

	return nil
}

func (r *Reconciler) lockSKU(sku string) func() {
	mu, _ := r.skuLocks.LoadOrStore(sku, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	return lock.Unlock
}

func markWritten(result *model.SyncResult, field string) {
	result.AddWritten(field)
	metrics.FieldWrites.WithLabelValues(field).Inc()
}
