package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SyncTotal counts finished reconciliations by outcome
	// (success, validation_error, not_found, upstream_error, error).
	SyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopify_sync",
		Name:      "sync_total",
		Help:      "Finished reconciliations by outcome.",
	}, []string{"outcome"})

	// FieldWrites counts the individual field writes applied to Shopify.
	FieldWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "shopify_sync",
		Name:      "field_writes_total",
		Help:      "Field writes applied to Shopify, by field.",
	}, []string{"field"})
)
