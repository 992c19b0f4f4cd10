package pizzeria

import (
	"github.com/shopspring/decimal"
)

// CatalogEntry is one purchasable option within a catalog category
// (a base, a size, or a topping). Names are unique within a category.
// Prices arrive as JSON numbers or quoted strings depending on the
// backend version; decimal.Decimal accepts both.
type CatalogEntry struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// CatalogResponse mirrors the /api/pizza/{bases,sizes,toppings} payloads.
type CatalogResponse struct {
	Data []CatalogEntry `json:"data"`
}

// OrderTopping references a topping by catalog id.
type OrderTopping struct {
	ToppingID string `json:"toppingId"`
	Quantity  int    `json:"quantity"`
}

// OrderItem is one pizza line in transport form, with names already
// resolved to catalog ids.
type OrderItem struct {
	BaseID   string         `json:"baseId"`
	SizeID   string         `json:"sizeId"`
	Quantity int            `json:"quantity"`
	Notes    string         `json:"notes"`
	Toppings []OrderTopping `json:"toppings"`
}

// OrderRequest mirrors the POST /api/orders payload.
type OrderRequest struct {
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	CustomerPhone string      `json:"customerPhone"`
	Notes         string      `json:"notes"`
	Items         []OrderItem `json:"items"`
}

// OrderResponse is the backend's acknowledgement of a placed order.
type OrderResponse struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
