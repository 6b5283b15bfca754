package recipe

// SeedRecipes returns the demo recipes the prototype ships with. Quantities
// are for the recipe's base servings.
func SeedRecipes() []Recipe {
	return []Recipe{
		{
			ID:              "spaghetti-pomodoro",
			Title:           "Spaghetti Pomodoro",
			Description:     "Weeknight pasta with a quick cherry tomato sauce and fresh basil.",
			Servings:        2,
			PrepTimeMinutes: 10,
			CookTimeMinutes: 20,
			Tags:            []string{"italian", "pasta", "vegetarian"},
			Ingredients: []IngredientLine{
				{Ingredient: "spaghetti", Quantity: 200, Unit: "g"},
				{Ingredient: "cherry tomatoes", Quantity: 300, Unit: "g"},
				{Ingredient: "fresh basil", Quantity: 10, Unit: "leaves"},
				{Ingredient: "garlic", Quantity: 3, Unit: "cloves"},
				{Ingredient: "olive oil", Quantity: 2, Unit: "tbsp"},
				{Ingredient: "salt", Quantity: 1, Unit: "tsp"},
				{Ingredient: "black pepper", Quantity: 0.5, Unit: "tsp"},
			},
		},
		{
			ID:              "citrus-chicken-tacos",
			Title:           "Citrus Chicken Tacos",
			Description:     "Orange-lime marinated chicken thighs on corn tortillas with cabbage slaw.",
			Servings:        4,
			PrepTimeMinutes: 25,
			CookTimeMinutes: 15,
			Tags:            []string{"mexican", "chicken", "weeknight"},
			Ingredients: []IngredientLine{
				{Ingredient: "boneless chicken thighs", Quantity: 600, Unit: "g"},
				{Ingredient: "corn tortillas", Quantity: 8, Unit: "pieces"},
				{Ingredient: "lime", Quantity: 2, Unit: "pieces"},
				{Ingredient: "orange juice", Quantity: 120, Unit: "ml"},
				{Ingredient: "red cabbage", Quantity: 200, Unit: "g"},
				{Ingredient: "cilantro", Quantity: 1, Unit: "bunch"},
				{Ingredient: "salt", Quantity: 1, Unit: "tsp"},
			},
		},
		{
			ID:              "veggie-stir-fry",
			Title:           "Rainbow Veggie Stir-Fry",
			Description:     "Crisp vegetables tossed in a ginger-soy glaze, ready in twenty minutes.",
			Servings:        2,
			PrepTimeMinutes: 15,
			CookTimeMinutes: 10,
			Tags:            []string{"asian", "vegan", "quick"},
			Ingredients: []IngredientLine{
				{Ingredient: "carrots", Quantity: 2, Unit: "pieces"},
				{Ingredient: "snow peas", Quantity: 150, Unit: "g"},
				{Ingredient: "bell pepper", Quantity: 1, Unit: "pieces"},
				{Ingredient: "broccoli florets", Quantity: 250, Unit: "g"},
				{Ingredient: "garlic", Quantity: 2, Unit: "cloves"},
				{Ingredient: "ginger", Quantity: 15, Unit: "g"},
				{Ingredient: "soy sauce", Quantity: 3, Unit: "tbsp"},
				{Ingredient: "sesame oil", Quantity: 1, Unit: "tbsp"},
				{Ingredient: "rice vinegar", Quantity: 1, Unit: "tbsp"},
			},
		},
	}
}
