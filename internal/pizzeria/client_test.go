package pizzeria

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAPIBase {
		t.Fatalf("host = %q, want %q", u.Host, defaultAPIBase)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestClient_FetchesCatalogEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/pizza/bases":
			// Price as a JSON string, which the backend sometimes emits.
			_, _ = w.Write([]byte(`{"data":[{"id":"b1","name":"Thin Crust","price":"10"}]}`))
		case "/api/pizza/sizes":
			_, _ = w.Write([]byte(`{"data":[{"id":"s1","name":"Large (14–16 Inches)","price":159.99}]}`))
		case "/api/pizza/toppings":
			_, _ = w.Write([]byte(`{"data":[{"id":"t1","name":"Bacon","price":10},{"id":"t2","name":"Onions","price":10}]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	bases, err := c.FetchBases(ctx)
	if err != nil {
		t.Fatalf("FetchBases returned error: %v", err)
	}
	if len(bases) != 1 || bases[0].Name != "Thin Crust" {
		t.Fatalf("FetchBases = %#v, want 1 entry Thin Crust", bases)
	}
	if !bases[0].Price.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("base price = %s, want 10", bases[0].Price)
	}

	sizes, err := c.FetchSizes(ctx)
	if err != nil {
		t.Fatalf("FetchSizes returned error: %v", err)
	}
	if len(sizes) != 1 || !sizes[0].Price.Equal(decimal.RequireFromString("159.99")) {
		t.Fatalf("FetchSizes = %#v, want 1 entry priced 159.99", sizes)
	}

	toppings, err := c.FetchToppings(ctx)
	if err != nil {
		t.Fatalf("FetchToppings returned error: %v", err)
	}
	if len(toppings) != 2 || toppings[1].ID != "t2" {
		t.Fatalf("FetchToppings = %#v, want 2 entries", toppings)
	}

	if gotUserAgent == "" || !strings.HasPrefix(gotUserAgent, "pizzetta/") {
		t.Fatalf("User-Agent = %q, want pizzetta/*", gotUserAgent)
	}
}

func TestClient_SubmitOrderPostsJSON(t *testing.T) {
	t.Parallel()

	var gotBody OrderRequest
	var gotContentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/orders" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		gotContentType = r.Header.Get("Content-Type")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(OrderResponse{OrderID: "ord-77", Status: "pending"})
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	req := OrderRequest{
		CustomerName:  "Asha",
		CustomerEmail: "asha@example.com",
		CustomerPhone: "555-0101",
		Items: []OrderItem{{
			BaseID:   "b1",
			SizeID:   "s1",
			Quantity: 2,
			Toppings: []OrderTopping{{ToppingID: "t1", Quantity: 1}},
		}},
	}
	resp, err := c.SubmitOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if resp.OrderID != "ord-77" {
		t.Fatalf("OrderID = %q, want ord-77", resp.OrderID)
	}
	if gotContentType != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", gotContentType)
	}
	if gotBody.CustomerName != "Asha" || len(gotBody.Items) != 1 || gotBody.Items[0].Quantity != 2 {
		t.Fatalf("posted body = %#v, want the submitted order", gotBody)
	}
}

func TestClient_SubmitOrderRejectsEmptyOrder(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	_, err = c.SubmitOrder(context.Background(), OrderRequest{})
	if err == nil {
		t.Fatalf("SubmitOrder returned nil error, want error")
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/pizza/bases":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/api/pizza/sizes":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchBases(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchBases error = %v, want decode response error", err)
	}

	_, err = c.FetchSizes(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("FetchSizes error = %v, want status 500 error", err)
	}
}
