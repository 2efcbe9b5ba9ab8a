package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"shopify-sync/internal/adapters/shopify/dto"
	"shopify-sync/internal/config"
	"shopify-sync/internal/domain/model"
)

// VariantService resolves and mutates variant/product resources.
type VariantService interface {
	FindVariantBySKU(ctx context.Context, sku string) (model.VariantRef, error)
	GetVariant(ctx context.Context, variantID int64) (Variant, error)
	UpdateVariant(ctx context.Context, variantID int64, update VariantUpdate) error
	UpdateProductTitle(ctx context.Context, productID int64, title string) error
}

// MarketService reads market catalogs and writes price-list fixed prices.
type MarketService interface {
	ListMarketCatalogs(ctx context.Context) ([]MarketCatalog, error)
	PriceListFixedPrice(ctx context.Context, priceListID, variantGID string) (*FixedPrice, error)
	AddPriceListFixedPrice(ctx context.Context, priceListID string, price FixedPriceInput) error
}

// InventoryService reads locations and sets absolute stock levels.
type InventoryService interface {
	ListLocations(ctx context.Context) ([]Location, error)
	SetInventoryLevel(ctx context.Context, inventoryItemID, locationID int64, available int) error
}

// MetafieldService writes variant attributes.
type MetafieldService interface {
	SetVariantSize(ctx context.Context, variantGID, size string) error
}

// Client is a stateless transport facade over the Shopify Admin API.
// It holds no business logic and no cross-call cache; those belong to
// the callers.
type Client struct {
	config     config.ShopifyConfig
	httpClient *http.Client
}

func NewClient(config config.ShopifyConfig, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type httpStatusError struct {
	statusCode int
	status     string
	body       string
}

func (e *httpStatusError) Error() string {
	if e.body == "" {
		return fmt.Sprintf("request failed: %s", e.status)
	}
	return fmt.Sprintf("request failed: %s: %s", e.status, e.body)
}

func (c *Client) baseURL() (string, error) {
	domain := strings.TrimSpace(c.config.ShopDomain)
	if domain == "" {
		return "", errors.New("shopify shop domain is empty")
	}
	if !strings.HasPrefix(domain, "http://") && !strings.HasPrefix(domain, "https://") {
		domain = "https://" + domain
	}
	domain = strings.TrimRight(domain, "/")
	if c.config.APIVer == "" {
		return "", errors.New("shopify api version is empty")
	}
	return domain + "/admin/api/" + c.config.APIVer, nil
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.config.Token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &httpStatusError{
			statusCode: resp.StatusCode,
			status:     resp.Status,
			body:       strings.TrimSpace(string(respBody)),
		}
	}

	return respBody, nil
}

// restRequest issues one resource-oriented call. in is marshalled as the
// JSON body when non-nil; out is filled from the response when non-nil.
func (c *Client) restRequest(ctx context.Context, op, method, path string, in any, out any) error {
	base, err := c.baseURL()
	if err != nil {
		return upstream(op, err)
	}

	var body io.Reader
	if in != nil {
		bodyBytes, err := json.Marshal(in)
		if err != nil {
			return upstream(op, err)
		}
		body = bytes.NewReader(bodyBytes)
	}

	raw, err := c.doRequest(ctx, method, base+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return upstream(op, err)
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return upstream(op, err)
	}
	return nil
}

// graphqlRequest issues one structured query/mutation. Top-level graphql
// errors surface as an upstream failure; mutation userErrors are checked
// by the call sites.
func (c *Client) graphqlRequest(ctx context.Context, op, query string, variables map[string]any, out any) error {
	base, err := c.baseURL()
	if err != nil {
		return upstream(op, err)
	}

	payload := graphQLRequest{
		Query:     strings.TrimSpace(query),
		Variables: variables,
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return upstream(op, err)
	}

	raw, err := c.doRequest(ctx, http.MethodPost, base+"/graphql.json", bytes.NewReader(bodyBytes))
	if err != nil {
		return upstream(op, err)
	}

	var resp dto.GraphQLResponse[json.RawMessage]
	if err := json.Unmarshal(raw, &resp); err != nil {
		return upstream(op, err)
	}
	if len(resp.Errors) > 0 {
		return upstream(op, fmt.Errorf("graphql errors: %s", formatGraphQLErrors(resp.Errors)))
	}
	if out == nil {
		return nil
	}
	if len(resp.Data) == 0 {
		return upstream(op, errors.New("graphql response missing data"))
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return upstream(op, err)
	}
	return nil
}

func upstream(op string, err error) error {
	status := 0
	var httpErr *httpStatusError
	if errors.As(err, &httpErr) {
		status = httpErr.statusCode
	}
	return &model.UpstreamError{Op: op, Status: status, Err: err}
}

func userErrorsToError(action string, errs []dto.ShopifyUserError) error {
	if len(errs) == 0 {
		return nil
	}
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		if len(e.Field) > 0 {
			msg = fmt.Sprintf("%s: %s", strings.Join(e.Field, "."), msg)
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return &model.UpstreamError{Op: action, Err: errors.New("user errors returned")}
	}
	return &model.UpstreamError{Op: action, Err: errors.New(strings.Join(parts, "; "))}
}

func formatGraphQLErrors(errs []dto.GraphQLError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := strings.TrimSpace(e.Message)
		if msg == "" {
			continue
		}
		if len(e.Path) > 0 {
			msg = fmt.Sprintf("%s (path: %v)", msg, e.Path)
		}
		parts = append(parts, msg)
	}
	if len(parts) == 0 {
		return "unknown graphql error"
	}
	return strings.Join(parts, "; ")
}

func buildSearchQuery(field, value string) string {
	if strings.ContainsAny(value, " \"") {
		value = strings.ReplaceAll(value, `"`, `\"`)
		value = fmt.Sprintf(`"%s"`, value)
	}
	return fmt.Sprintf("%s:%s", field, value)
}
