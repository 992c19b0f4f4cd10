package pizzeria

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Menu defines the interface for fetching catalog data and placing orders.
// This interface is implemented by *Client and can be used for testing.
type Menu interface {
	FetchBases(ctx context.Context) ([]CatalogEntry, error)
	FetchSizes(ctx context.Context) ([]CatalogEntry, error)
	FetchToppings(ctx context.Context) ([]CatalogEntry, error)
	SubmitOrder(ctx context.Context, order OrderRequest) (*OrderResponse, error)
}

// Ensure Client implements Menu at compile time.
var _ Menu = (*Client)(nil)

// Client talks to the pizzeria HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAPIBase   = "127.0.0.1:4600"
	defaultUserAgent = "pizzetta/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client using the provided apiBase host:port or URL value.
func NewClient(apiBase string) (*Client, error) {
	base, err := parseBaseURL(apiBase)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchBases retrieves the available pizza bases with current prices.
func (c *Client) FetchBases(ctx context.Context) ([]CatalogEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload CatalogResponse
	if err := c.get(ctx, "/api/pizza/bases", &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// FetchSizes retrieves the available pizza sizes with current prices.
func (c *Client) FetchSizes(ctx context.Context) ([]CatalogEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload CatalogResponse
	if err := c.get(ctx, "/api/pizza/sizes", &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// FetchToppings retrieves the available toppings with current prices.
func (c *Client) FetchToppings(ctx context.Context) ([]CatalogEntry, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload CatalogResponse
	if err := c.get(ctx, "/api/pizza/toppings", &payload); err != nil {
		return nil, err
	}
	return payload.Data, nil
}

// SubmitOrder posts the assembled order and returns the created order record.
func (c *Client) SubmitOrder(ctx context.Context, order OrderRequest) (*OrderResponse, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("order has no items")
	}
	var payload OrderResponse
	if err := c.post(ctx, "/api/orders", order, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

func (c *Client) post(ctx context.Context, path string, body any, dest any) error {
	return c.do(ctx, http.MethodPost, path, body, dest)
}

func (c *Client) do(ctx context.Context, method, path string, body any, dest any) error {
	reqURL := c.baseURL.ResolveReference(&url.URL{Path: path})

	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(apiBase string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiBase)
	if trimmed == "" {
		trimmed = defaultAPIBase
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_base %q: %w", apiBase, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
