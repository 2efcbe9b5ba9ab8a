package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shopify-sync/internal/api/handlers"
	"shopify-sync/internal/api/middleware"
	"shopify-sync/internal/logging"
)

func SetupRouter(syncHandler *handlers.SyncHandler, logger logging.LoggerService, webhookSecret string) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("Airtable-Shopify Sync Running"))
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Handle("/metrics", promhttp.Handler())

	r.With(middleware.SharedSecret(webhookSecret)).Post("/airtable-webhook", syncHandler.Handle)

	return r
}
