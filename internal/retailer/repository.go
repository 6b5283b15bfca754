package retailer

import "sync"

// CartRepository stores carts keyed by id. Get returns (nil, nil) for an
// unknown id. Update runs fn against the live cart under the repository's
// lock, which keeps concurrent mutations of the same cart serial.
type CartRepository interface {
	Put(cart *Cart) error
	Get(id string) (*Cart, error)
	Update(id string, fn func(*Cart) error) error
}

// MemoryCartRepository keeps carts in process memory.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

// NewMemoryCartRepository creates an empty in-memory cart store.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{carts: make(map[string]*Cart)}
}

// Put stores a cart under its id.
func (r *MemoryCartRepository) Put(cart *Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[cart.ID] = cart
	return nil
}

// Get returns a snapshot of the cart, or (nil, nil) if absent. Snapshotting
// keeps readers independent of concurrent Update calls.
func (r *MemoryCartRepository) Get(id string) (*Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	cart, ok := r.carts[id]
	if !ok {
		return nil, nil
	}
	return snapshot(cart), nil
}

// Update applies fn to the stored cart under the write lock. Returns
// ErrCartNotFound for unknown ids.
func (r *MemoryCartRepository) Update(id string, fn func(*Cart) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cart, ok := r.carts[id]
	if !ok {
		return ErrCartNotFound
	}
	return fn(cart)
}

func snapshot(cart *Cart) *Cart {
	copied := *cart
	copied.Items = append([]LineItem(nil), cart.Items...)
	copied.Fallbacks = append([]Fallback(nil), cart.Fallbacks...)
	return &copied
}
