package recipe

// Catalog is the read-only recipe source consumed by the meal planner.
type Catalog interface {
	List() []Summary
	Get(id string) (*Recipe, bool)
}

// StaticCatalog serves a fixed set of recipes loaded at startup. Recipes are
// never added, changed, or removed for the life of the process, so lookups
// need no locking.
type StaticCatalog struct {
	recipes []Recipe
	byID    map[string]*Recipe
}

// NewStaticCatalog builds a catalog over the given recipes.
func NewStaticCatalog(recipes []Recipe) *StaticCatalog {
	c := &StaticCatalog{
		recipes: recipes,
		byID:    make(map[string]*Recipe, len(recipes)),
	}
	for i := range c.recipes {
		c.byID[c.recipes[i].ID] = &c.recipes[i]
	}
	return c
}

// List returns summaries of every recipe in seed order.
func (c *StaticCatalog) List() []Summary {
	summaries := make([]Summary, 0, len(c.recipes))
	for _, r := range c.recipes {
		summaries = append(summaries, r.Summary())
	}
	return summaries
}

// Get returns the recipe with the given id, or false if it is unknown.
func (c *StaticCatalog) Get(id string) (*Recipe, bool) {
	r, ok := c.byID[id]
	return r, ok
}
