package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/render"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shopify-sync/internal/adapters/journal"
	"shopify-sync/internal/app/usecases"
	"shopify-sync/internal/domain/model"
	"shopify-sync/internal/logging"
	"shopify-sync/internal/metrics"
)

// syncPayload mirrors the webhook body field-for-field; the names are
// fixed by the sending system, spacing included.
type syncPayload struct {
	SKU            string           `json:"SKU"`
	Title          string           `json:"Title"`
	Barcode        string           `json:"Barcode"`
	Size           string           `json:"Size"`
	UAEPrice       model.FlexNumber `json:"UAE price"`
	AsiaPrice      model.FlexNumber `json:"Asia Price"`
	AmericaPrice   model.FlexNumber `json:"America Price"`
	UAECompare     model.FlexNumber `json:"UAE Comparison Price"`
	AsiaCompare    model.FlexNumber `json:"Asia Comparison Price"`
	AmericaCompare model.FlexNumber `json:"America Comparison Price"`
	Quantity       model.FlexNumber `json:"Qty given in shopify"`
}

// toSyncRequest normalizes the payload. The UAE price doubles as the
// shop's default price, so it feeds both the variant price and the UAE
// price list.
func (p syncPayload) toSyncRequest() model.SyncRequest {
	return model.SyncRequest{
		SKU:                 p.SKU,
		Title:               p.Title,
		Barcode:             p.Barcode,
		Size:                p.Size,
		DefaultPrice:        p.UAEPrice.Decimal(),
		DefaultComparePrice: p.UAECompare.Decimal(),
		Quantity:            p.Quantity.Int(),
		MarketPrices: map[string]*decimal.Decimal{
			model.MarketUAE:     p.UAEPrice.Decimal(),
			model.MarketAsia:    p.AsiaPrice.Decimal(),
			model.MarketAmerica: p.AmericaPrice.Decimal(),
		},
		MarketComparePrices: map[string]*decimal.Decimal{
			model.MarketUAE:     p.UAECompare.Decimal(),
			model.MarketAsia:    p.AsiaCompare.Decimal(),
			model.MarketAmerica: p.AmericaCompare.Decimal(),
		},
	}
}

type syncResponse struct {
	Status string            `json:"status"`
	SyncID string            `json:"syncId"`
	Result *model.SyncResult `json:"result,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type SyncHandler struct {
	reconciler usecases.ReconcileService
	journal    journal.Service
	logger     logging.LoggerService
}

func NewSyncHandler(reconciler usecases.ReconcileService, journal journal.Service, logger logging.LoggerService) *SyncHandler {
	return &SyncHandler{
		reconciler: reconciler,
		journal:    journal,
		logger:     logger,
	}
}

func (h *SyncHandler) Handle(w http.ResponseWriter, r *http.Request) {
	syncID := uuid.NewString()

	var payload syncPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, r, syncID, "", &model.ValidationError{Field: "body", Reason: "malformed json"})
		return
	}

	req := payload.toSyncRequest()
	result, err := h.reconciler.Reconcile(r.Context(), req)
	if err != nil {
		h.respondError(w, r, syncID, req.SKU, err)
		return
	}

	metrics.SyncTotal.WithLabelValues("success").Inc()
	h.record(r, journal.Entry{
		SyncID:  syncID,
		SKU:     result.SKU,
		Outcome: "success",
		Written: result.Written,
	})

	render.Status(r, http.StatusOK)
	render.JSON(w, r, syncResponse{
		Status: "success",
		SyncID: syncID,
		Result: &result,
	})
}

func (h *SyncHandler) respondError(w http.ResponseWriter, r *http.Request, syncID, sku string, err error) {
	status := http.StatusInternalServerError
	outcome := "error"

	switch {
	case model.IsValidation(err):
		status = http.StatusBadRequest
		outcome = "validation_error"
	case model.IsNotFound(err):
		status = http.StatusNotFound
		outcome = "not_found"
	case model.IsUpstream(err):
		status = http.StatusBadGateway
		outcome = "upstream_error"
	}

	if h.logger != nil && status >= http.StatusInternalServerError {
		h.logger.LogError("sync failed", err)
	}
	metrics.SyncTotal.WithLabelValues(outcome).Inc()
	h.record(r, journal.Entry{
		SyncID:  syncID,
		SKU:     sku,
		Outcome: outcome,
		Detail:  err.Error(),
	})

	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: err.Error()})
}

func (h *SyncHandler) record(r *http.Request, entry journal.Entry) {
	if h.journal == nil {
		return
	}
	h.journal.Record(r.Context(), entry)
}
