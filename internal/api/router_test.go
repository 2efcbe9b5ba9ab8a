package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"shopify-sync/internal/api/handlers"
	"shopify-sync/internal/domain/model"
)

type okReconciler struct{}

func (okReconciler) Reconcile(_ context.Context, req model.SyncRequest) (model.SyncResult, error) {
	return model.SyncResult{SKU: req.SKU}, nil
}

func newTestRouter() http.Handler {
	handler := handlers.NewSyncHandler(okReconciler{}, nil, nil)
	return SetupRouter(handler, nil, "s3cret")
}

func TestWebhookRequiresSharedSecret(t *testing.T) {
	router := newTestRouter()
	body := `{"SKU": "ABC-1"}`

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/airtable-webhook", strings.NewReader(body))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "unauthorized"}`, rec.Body.String())
	})

	t.Run("wrong secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/airtable-webhook", strings.NewReader(body))
		req.Header.Set("X-Secret-Token", "wrong")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("correct secret", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/airtable-webhook", strings.NewReader(body))
		req.Header.Set("X-Secret-Token", "s3cret")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHealthAndRootAreOpen(t *testing.T) {
	router := newTestRouter()

	for _, path := range []string{"/", "/healthz", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}
