// Package pizzeria provides an HTTP client for the pizzeria backend API.
//
// # Overview
//
// This package defines the API client for the remote pizzeria service. It
// handles HTTP communication, JSON serialization, and type-safe
// representation of catalog entries and orders.
//
// # Architecture
//
// The package is split into two files:
//
//   - client.go: HTTP client implementation and request/response handling
//   - types.go: Data structures mirroring the pizzeria API schema
//
// # Client Usage
//
// Create a client using the API base address from configuration:
//
//	client, err := pizzeria.NewClient("127.0.0.1:4600")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	bases, err := client.FetchBases(ctx)
//	if err != nil {
//		log.Printf("bases fetch failed: %v", err)
//	}
//
// # API Endpoints
//
// The client supports three read endpoints and one write endpoint:
//
//   - GET /api/pizza/bases: Available crusts with prices
//   - GET /api/pizza/sizes: Available sizes with prices
//   - GET /api/pizza/toppings: Available toppings with prices
//   - POST /api/orders: Submit an assembled order
//
// The read endpoints all share the CatalogEntry shape wrapped in a
// {"data": [...]} envelope. Each fetch is an independent snapshot; the
// server offers no pagination or partial updates.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation and timeout control
//   - Set Accept: application/json header
//   - Include User-Agent: pizzetta/0.1 header
//   - Have a 5-second timeout (configurable via http.Client)
//   - Return wrapped errors with context about what failed
//
// # Error Handling
//
// Errors are wrapped with descriptive context using fmt.Errorf:
//
//   - "execute request: dial tcp: connection refused"
//   - "api /api/pizza/bases returned status 500"
//   - "decode response: unexpected end of JSON input"
//
// Fetch failures never crash the app; the catalog store keeps the last
// good snapshot and the UI degrades to whatever data it has.
//
// # Prices
//
// Prices are decimal.Decimal throughout. The backend has been observed to
// serialize prices both as JSON numbers and as quoted strings; decimal's
// unmarshaller accepts either, so no custom decoding is needed.
//
// # URL Construction
//
// The client accepts several api_base formats:
//
//   - "127.0.0.1:4600" → http://127.0.0.1:4600
//   - "https://shop.example.com" → https://shop.example.com
//
// The scheme defaults to "http://" if not specified.
//
// # Thread Safety
//
// The Client struct is safe for concurrent use. The underlying http.Client
// handles connection pooling and concurrent requests internally.
//
// # Design Rationale
//
// The package is intentionally minimal:
//   - No caching (the catalog poller handles refresh cadence)
//   - No retries (order submission retry is a user decision)
//   - No streaming (snapshot-based polling is sufficient)
package pizzeria
