// Package grocery scales and merges recipe ingredient lines into a single
// shopping quantity per (ingredient, unit) pair.
package grocery

import (
	"strconv"

	"grocery-assistant/internal/recipe"
)

// RoundQuantity rounds v to two decimal places. Rounding happens on the
// decimal representation rather than via math.Round(v*100)/100, which can
// land one cent off for quantities like 1.005 that have no exact binary form.
func RoundQuantity(v float64) float64 {
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return rounded
}

// Scale multiplies every line's quantity by factor and rounds the result to
// two decimals. The input is left untouched.
func Scale(lines []recipe.IngredientLine, factor float64) []recipe.IngredientLine {
	scaled := make([]recipe.IngredientLine, 0, len(lines))
	for _, line := range lines {
		line.Quantity = RoundQuantity(line.Quantity * factor)
		scaled = append(scaled, line)
	}
	return scaled
}

type mergeKey struct {
	ingredient string
	unit       string
}

// Aggregate merges ingredient lines from any number of lists, summing
// quantities that share the same (ingredient, unit) pair. The same ingredient
// in different units stays as separate entries. Output preserves the order in
// which each pair was first seen; each merged quantity is rounded to two
// decimals.
func Aggregate(lists ...[]recipe.IngredientLine) []recipe.IngredientLine {
	var merged []recipe.IngredientLine
	index := make(map[mergeKey]int)

	for _, lines := range lists {
		for _, line := range lines {
			key := mergeKey{ingredient: line.Ingredient, unit: line.Unit}
			if i, ok := index[key]; ok {
				merged[i].Quantity = RoundQuantity(merged[i].Quantity + line.Quantity)
				continue
			}
			index[key] = len(merged)
			merged = append(merged, recipe.IngredientLine{
				Ingredient: line.Ingredient,
				Quantity:   RoundQuantity(line.Quantity),
				Unit:       line.Unit,
			})
		}
	}
	return merged
}
