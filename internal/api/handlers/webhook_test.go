package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopify-sync/internal/adapters/journal"
	"shopify-sync/internal/domain/model"
)

type stubReconciler struct {
	lastRequest model.SyncRequest
	calls       int
	result      model.SyncResult
	err         error
}

func (s *stubReconciler) Reconcile(_ context.Context, req model.SyncRequest) (model.SyncResult, error) {
	s.calls++
	s.lastRequest = req
	if s.err != nil {
		return model.SyncResult{}, s.err
	}
	return s.result, nil
}

type memoryJournal struct {
	entries []journal.Entry
}

func (m *memoryJournal) Record(_ context.Context, entry journal.Entry) {
	m.entries = append(m.entries, entry)
}

func postSync(t *testing.T, handler *SyncHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/airtable-webhook", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandlePayloadMapping(t *testing.T) {
	stub := &stubReconciler{result: model.SyncResult{SKU: "ABC-1"}}
	handler := NewSyncHandler(stub, nil, nil)

	rec := postSync(t, handler, `{
		"SKU": "ABC-1",
		"Title": "Shirt",
		"Barcode": "123",
		"Size": "XL",
		"UAE price": 120,
		"Asia Price": "",
		"America Price": "30.5",
		"UAE Comparison Price": "150",
		"Qty given in shopify": 0
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 1, stub.calls)
	req := stub.lastRequest

	assert.Equal(t, "ABC-1", req.SKU)
	assert.Equal(t, "Shirt", req.Title)
	assert.Equal(t, "123", req.Barcode)
	assert.Equal(t, "XL", req.Size)

	require.NotNil(t, req.DefaultPrice)
	assert.True(t, req.DefaultPrice.Equal(decimal.NewFromInt(120)))
	require.NotNil(t, req.DefaultComparePrice)
	assert.True(t, req.DefaultComparePrice.Equal(decimal.NewFromInt(150)))

	require.NotNil(t, req.MarketPrices[model.MarketUAE])
	assert.True(t, req.MarketPrices[model.MarketUAE].Equal(decimal.NewFromInt(120)))
	assert.Nil(t, req.MarketPrices[model.MarketAsia])
	require.NotNil(t, req.MarketPrices[model.MarketAmerica])
	assert.True(t, req.MarketPrices[model.MarketAmerica].Equal(decimal.RequireFromString("30.5")))

	require.NotNil(t, req.Quantity)
	assert.Equal(t, 0, *req.Quantity)
}

func TestHandleAbsentQuantityStaysAbsent(t *testing.T) {
	stub := &stubReconciler{result: model.SyncResult{SKU: "ABC-1"}}
	handler := NewSyncHandler(stub, nil, nil)

	rec := postSync(t, handler, `{"SKU": "ABC-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, stub.lastRequest.Quantity)
	assert.Nil(t, stub.lastRequest.DefaultPrice)
}

func TestHandleSuccessResponse(t *testing.T) {
	stub := &stubReconciler{result: model.SyncResult{
		SKU:     "ABC-1",
		Written: []string{"default_price"},
	}}
	record := &memoryJournal{}
	handler := NewSyncHandler(stub, record, nil)

	rec := postSync(t, handler, `{"SKU": "ABC-1", "UAE price": 105.5}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Status string           `json:"status"`
		SyncID string           `json:"syncId"`
		Result model.SyncResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.NotEmpty(t, resp.SyncID)
	assert.Equal(t, []string{"default_price"}, resp.Result.Written)

	require.Len(t, record.entries, 1)
	assert.Equal(t, "success", record.entries[0].Outcome)
	assert.Equal(t, resp.SyncID, record.entries[0].SyncID)
}

func TestHandleErrorStatusMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"validation", &model.ValidationError{Field: "SKU", Reason: "missing"}, http.StatusBadRequest},
		{"not found", &model.NotFoundError{SKU: "NOPE"}, http.StatusNotFound},
		{"upstream", &model.UpstreamError{Op: "getVariant", Status: 500, Err: errors.New("boom")}, http.StatusBadGateway},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewSyncHandler(&stubReconciler{err: tc.err}, nil, nil)

			rec := postSync(t, handler, `{"SKU": "ABC-1"}`)

			assert.Equal(t, tc.wantStatus, rec.Code)
			var resp struct {
				Error string `json:"error"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestHandleMalformedJSONIsBadRequest(t *testing.T) {
	stub := &stubReconciler{}
	handler := NewSyncHandler(stub, nil, nil)

	rec := postSync(t, handler, `{"SKU": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, stub.calls)
}
