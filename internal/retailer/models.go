// Package retailer holds the per-store product catalog and the cart
// lifecycle: creation, SKU validation with substitution fallbacks, totals,
// and checkout handoff links.
package retailer

import "time"

// Store is a physical retail location the assistant can stage carts for.
type Store struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Zipcode       string `json:"zipcode"`
	Address       string `json:"address"`
	HandoffDomain string `json:"handoffDomain"`
}

// Product is one catalog item in a specific store's inventory.
type Product struct {
	SKU         string  `json:"sku"`
	Name        string  `json:"name"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	InStock     bool    `json:"inStock"`
	PackageSize float64 `json:"packageSize"`
	Size        string  `json:"size"`
	StoreID     string  `json:"storeId,omitempty"`
}

// ItemInput is a requested cart line before SKU validation. Category is
// optional and only used to suggest alternatives when the SKU is unknown.
type ItemInput struct {
	SKU      string `json:"sku"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit"`
	Category string `json:"category,omitempty"`
}

// LineItem is a validated cart line priced from the store catalog.
type LineItem struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Unit     string  `json:"unit"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	StoreID  string  `json:"storeId"`
}

// Alternative is a substitute product suggested in a fallback.
type Alternative struct {
	SKU      string  `json:"sku"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Size     string  `json:"size"`
}

// Fallback records a requested SKU that could not be added as-is, with up to
// three in-stock substitutes for the human reviewer to pick from.
type Fallback struct {
	SKURequested    string        `json:"skuRequested"`
	Reason          string        `json:"reason"`
	Alternatives    []Alternative `json:"alternatives"`
	AllowManualEdit bool          `json:"allowManualEdit"`
}

// Fallback reasons.
const (
	ReasonSKUNotFound = "sku_not_found"
	ReasonOutOfStock  = "out_of_stock"
)

// Totals is the running subtotal of a cart.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Currency string  `json:"currency"`
}

// Cart is a staged shopping cart. Carts are only ever created and appended
// to; checkout happens outside this system via the handoff links.
type Cart struct {
	ID        string     `json:"id"`
	StoreID   string     `json:"storeId"`
	Zipcode   string     `json:"zipcode"`
	Items     []LineItem `json:"items"`
	Fallbacks []Fallback `json:"fallbacks"`
	Totals    Totals     `json:"totals"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt,omitzero"`
}

// StatusDraft is the only cart status the prototype produces: every cart
// waits for human review.
const StatusDraft = "draft"

// CheckoutLinks is the handoff artifact for completing a purchase outside
// this system.
type CheckoutLinks struct {
	CartID       string `json:"cartId"`
	WebURL       string `json:"webUrl"`
	DeepLink     string `json:"deepLink"`
	HandoffToken string `json:"handoffToken,omitempty"`
}
