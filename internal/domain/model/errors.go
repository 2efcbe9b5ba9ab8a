package model

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError rejects a payload before any remote call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	field := strings.TrimSpace(e.Field)
	if field == "" {
		return fmt.Sprintf("invalid payload: %s", e.Reason)
	}
	return fmt.Sprintf("invalid payload: %s %s", field, e.Reason)
}

// AuthError means the shared-secret check failed.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "unauthorized"
}

// NotFoundError means no variant matched the requested SKU.
type NotFoundError struct {
	SKU string
}

func (e *NotFoundError) Error() string {
	sku := strings.TrimSpace(e.SKU)
	if sku == "" {
		return "variant not found"
	}
	return fmt.Sprintf("variant not found for sku %s", sku)
}

// UpstreamError is any Shopify call failure: transport error, non-2xx
// status, graphql errors or mutation userErrors. It aborts the remaining
// reconciliation steps without rollback.
type UpstreamError struct {
	Op     string
	Status int
	Err    error
}

func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("shopify %s failed", e.Op)
	}
	return fmt.Sprintf("shopify %s failed: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

func IsValidation(err error) bool {
	var typed *ValidationError
	return errors.As(err, &typed)
}

func IsNotFound(err error) bool {
	var typed *NotFoundError
	return errors.As(err, &typed)
}

func IsUpstream(err error) bool {
	var typed *UpstreamError
	return errors.As(err, &typed)
}
