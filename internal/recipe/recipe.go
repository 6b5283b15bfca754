package recipe

// IngredientLine is one ingredient requirement of a recipe, expressed for the
// recipe's base number of servings.
type IngredientLine struct {
	Ingredient string  `json:"ingredient"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
}

// Recipe is an immutable catalog entry seeded at startup.
type Recipe struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Servings        int              `json:"servings"`
	PrepTimeMinutes int              `json:"prepTimeMinutes"`
	CookTimeMinutes int              `json:"cookTimeMinutes"`
	Tags            []string         `json:"tags"`
	Ingredients     []IngredientLine `json:"ingredients"`
}

// Summary is the listing view of a recipe, without its ingredient lines.
type Summary struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Servings        int      `json:"servings"`
	PrepTimeMinutes int      `json:"prepTimeMinutes"`
	CookTimeMinutes int      `json:"cookTimeMinutes"`
	Tags            []string `json:"tags"`
}

// Summary returns the listing view of r.
func (r Recipe) Summary() Summary {
	return Summary{
		ID:              r.ID,
		Title:           r.Title,
		Description:     r.Description,
		Servings:        r.Servings,
		PrepTimeMinutes: r.PrepTimeMinutes,
		CookTimeMinutes: r.CookTimeMinutes,
		Tags:            r.Tags,
	}
}
