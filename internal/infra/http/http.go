package http

import (
	"net/http"
	"time"
)

// NewClient returns the shared outbound HTTP client. The timeout is the
// only deadline in the system; slow Shopify calls block their
// reconciliation until it fires.
func NewClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &http.Client{Timeout: timeout}
}
