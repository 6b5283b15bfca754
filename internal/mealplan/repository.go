package mealplan

import "sync"

// Repository stores meal plans keyed by id. Get returns (nil, nil) when the
// id is unknown; the service maps that to ErrMealPlanNotFound. The interface
// exists so a database-backed implementation can be swapped in without
// touching the planning logic.
type Repository interface {
	Put(plan *MealPlan) error
	Get(id string) (*MealPlan, error)
	List() ([]*MealPlan, error)
}

// MemoryRepository keeps plans in process memory for the life of the process.
// A single RWMutex serializes writers so concurrent requests stay effectively
// serial per plan.
type MemoryRepository struct {
	mu    sync.RWMutex
	plans map[string]*MealPlan
	order []string
}

// NewMemoryRepository creates an empty in-memory plan store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{plans: make(map[string]*MealPlan)}
}

// Put stores a plan under its id.
func (r *MemoryRepository) Put(plan *MealPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.plans[plan.ID]; !exists {
		r.order = append(r.order, plan.ID)
	}
	r.plans[plan.ID] = plan
	return nil
}

// Get returns the plan with the given id, or (nil, nil) if absent.
func (r *MemoryRepository) Get(id string) (*MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.plans[id], nil
}

// List returns all stored plans in creation order.
func (r *MemoryRepository) List() ([]*MealPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	plans := make([]*MealPlan, 0, len(r.order))
	for _, id := range r.order {
		plans = append(plans, r.plans[id])
	}
	return plans, nil
}
