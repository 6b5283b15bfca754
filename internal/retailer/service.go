package retailer

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"grocery-assistant/internal/grocery"
)

// Service exposes store lookup, product search, and the cart lifecycle.
type Service struct {
	stores     []Store
	catalog    map[string][]Product
	carts      CartRepository
	signingKey []byte
	now        func() time.Time
}

// NewService creates a Service over the given store list, per-store catalog,
// and cart store. signingKey signs checkout handoff tokens.
func NewService(stores []Store, catalog map[string][]Product, carts CartRepository, signingKey []byte) *Service {
	return &Service{
		stores:     stores,
		catalog:    catalog,
		carts:      carts,
		signingKey: signingKey,
		now:        time.Now,
	}
}

// StoresByZip returns every store in the given zipcode.
func (s *Service) StoresByZip(zipcode string) []Store {
	matches := []Store{}
	if zipcode == "" {
		return matches
	}
	for _, store := range s.stores {
		if store.Zipcode == zipcode {
			matches = append(matches, store)
		}
	}
	return matches
}

// StoreByID returns the store with the given id.
func (s *Service) StoreByID(id string) (*Store, bool) {
	for i := range s.stores {
		if s.stores[i].ID == id {
			return &s.stores[i], true
		}
	}
	return nil, false
}

// SearchQuery scopes a product search to a store, or to every store in a
// zipcode when no store id is given.
type SearchQuery struct {
	Query   string `json:"query"`
	StoreID string `json:"storeId"`
	Zipcode string `json:"zipcode"`
}

// SearchProducts matches the query case-insensitively against product name,
// brand, and category. An empty query matches everything in scope. Results
// carry the store id they were found in.
func (s *Service) SearchProducts(q SearchQuery) []Product {
	var scope []Store
	if q.StoreID != "" {
		if store, ok := s.StoreByID(q.StoreID); ok {
			scope = []Store{*store}
		}
	} else {
		scope = s.StoresByZip(q.Zipcode)
	}

	needle := strings.ToLower(q.Query)
	results := []Product{}
	for _, store := range scope {
		for _, item := range s.catalog[store.ID] {
			if needle == "" ||
				strings.Contains(strings.ToLower(item.Name), needle) ||
				strings.Contains(strings.ToLower(item.Brand), needle) ||
				strings.Contains(strings.ToLower(item.Category), needle) {
				item.StoreID = store.ID
				results = append(results, item)
			}
		}
	}
	return results
}

func (s *Service) findProduct(storeID, sku string) (*Product, bool) {
	for _, item := range s.catalog[storeID] {
		if item.SKU == sku {
			return &item, true
		}
	}
	return nil, false
}

// alternatives suggests up to three in-stock products from the same category,
// excluding the SKU that failed.
func (s *Service) alternatives(storeID, category, excludeSKU string) []Alternative {
	alts := []Alternative{}
	for _, item := range s.catalog[storeID] {
		if !item.InStock || item.Category != category || item.SKU == excludeSKU {
			continue
		}
		alts = append(alts, Alternative{
			SKU:      item.SKU,
			Name:     item.Name,
			Price:    item.Price,
			Currency: item.Currency,
			Size:     item.Size,
		})
		if len(alts) == 3 {
			break
		}
	}
	return alts
}

// validateItems resolves requested SKUs against the store catalog. Unknown
// and out-of-stock SKUs become fallbacks with substitution suggestions
// instead of failing the whole request.
func (s *Service) validateItems(storeID string, items []ItemInput) ([]LineItem, []Fallback) {
	validated := []LineItem{}
	fallbacks := []Fallback{}

	for _, item := range items {
		product, ok := s.findProduct(storeID, item.SKU)
		if !ok {
			fallbacks = append(fallbacks, Fallback{
				SKURequested:    item.SKU,
				Reason:          ReasonSKUNotFound,
				Alternatives:    s.alternatives(storeID, item.Category, ""),
				AllowManualEdit: true,
			})
			continue
		}
		if !product.InStock {
			fallbacks = append(fallbacks, Fallback{
				SKURequested:    item.SKU,
				Reason:          ReasonOutOfStock,
				Alternatives:    s.alternatives(storeID, product.Category, product.SKU),
				AllowManualEdit: true,
			})
			continue
		}

		quantity := item.Quantity
		if quantity <= 0 {
			quantity = 1
		}
		unit := item.Unit
		if unit == "" {
			unit = "ea"
		}
		validated = append(validated, LineItem{
			SKU:      product.SKU,
			Name:     product.Name,
			Quantity: quantity,
			Unit:     unit,
			Price:    product.Price,
			Currency: product.Currency,
			StoreID:  storeID,
		})
	}
	return validated, fallbacks
}

func cartTotals(items []LineItem) Totals {
	subtotal := 0.0
	currency := "USD"
	for i, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		if i == 0 {
			currency = item.Currency
		}
	}
	return Totals{Subtotal: grocery.RoundQuantity(subtotal), Currency: currency}
}

// CreateCart validates the requested items against the store's catalog and
// stores a draft cart. The cart zipcode defaults to the store's own.
func (s *Service) CreateCart(storeID, zipcode string, items []ItemInput) (*Cart, error) {
	store, ok := s.StoreByID(storeID)
	if !ok {
		return nil, ErrStoreNotFound
	}

	validated, fallbacks := s.validateItems(storeID, items)
	if zipcode == "" {
		zipcode = store.Zipcode
	}

	cart := &Cart{
		ID:        uuid.NewString(),
		StoreID:   storeID,
		Zipcode:   zipcode,
		Items:     validated,
		Fallbacks: fallbacks,
		Totals:    cartTotals(validated),
		Status:    StatusDraft,
		CreatedAt: s.now().UTC(),
	}
	if err := s.carts.Put(cart); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}
	return cart, nil
}

// Cart returns the cart with the given id.
func (s *Service) Cart(id string) (*Cart, error) {
	cart, err := s.carts.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart %s: %w", id, err)
	}
	if cart == nil {
		return nil, ErrCartNotFound
	}
	return cart, nil
}

// AddItems validates more items against the cart's store and appends them,
// recomputing totals. New fallbacks accumulate alongside the existing ones.
func (s *Service) AddItems(id string, items []ItemInput) (*Cart, error) {
	err := s.carts.Update(id, func(cart *Cart) error {
		validated, fallbacks := s.validateItems(cart.StoreID, items)
		cart.Items = append(cart.Items, validated...)
		cart.Fallbacks = append(cart.Fallbacks, fallbacks...)
		cart.Totals = cartTotals(cart.Items)
		cart.UpdatedAt = s.now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Cart(id)
}
