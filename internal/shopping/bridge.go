// Package shopping translates a meal plan's grocery list into a staged
// retailer cart, matching ingredients to products with a best-effort search.
package shopping

import (
	"math"

	"grocery-assistant/internal/mealplan"
	"grocery-assistant/internal/recipe"
	"grocery-assistant/internal/retailer"
)

// searchTerms maps ingredient names to the retailer search term that finds
// them. Ingredients without an alias are searched by their own name.
var searchTerms = map[string]string{
	"spaghetti":               "spaghetti pasta",
	"cherry tomatoes":         "cherry tomatoes",
	"fresh basil":             "basil",
	"garlic":                  "garlic",
	"olive oil":               "olive oil",
	"salt":                    "sea salt",
	"black pepper":            "black pepper",
	"boneless chicken thighs": "chicken thighs",
	"corn tortillas":          "corn tortillas",
	"lime":                    "limes",
	"orange juice":            "orange juice",
	"red cabbage":             "red cabbage",
	"cilantro":                "cilantro",
	"carrots":                 "carrots",
	"snow peas":               "snow peas",
	"bell pepper":             "bell pepper",
	"ginger":                  "ginger",
	"soy sauce":               "soy sauce",
	"sesame oil":              "sesame oil",
	"rice vinegar":            "rice vinegar",
	"broccoli florets":        "broccoli",
}

// Bridge wires the meal planner's grocery output to the retailer cart engine.
type Bridge struct {
	plans    *mealplan.Service
	retailer *retailer.Service
}

// NewBridge creates a Bridge over the two services.
func NewBridge(plans *mealplan.Service, rs *retailer.Service) *Bridge {
	return &Bridge{plans: plans, retailer: rs}
}

// CartBuild is the successful outcome of BuildCartFromPlan. Ingredients with
// no matching product end up in UnmatchedIngredients rather than failing the
// build; the human reviewing the cart decides what to do with them.
type CartBuild struct {
	PlanID               string                  `json:"planId"`
	StoreID              string                  `json:"storeId"`
	Zipcode              string                  `json:"zipcode"`
	Cart                 *retailer.Cart          `json:"cart"`
	UnmatchedIngredients []recipe.IngredientLine `json:"unmatchedIngredients"`
}

// resolveProduct finds the product for an ingredient, preferring the first
// in-stock match and falling back to the first match of any stock status.
func (b *Bridge) resolveProduct(line recipe.IngredientLine, storeID, zipcode string) (*retailer.Product, bool) {
	query, ok := searchTerms[line.Ingredient]
	if !ok {
		query = line.Ingredient
	}

	products := b.retailer.SearchProducts(retailer.SearchQuery{
		Query:   query,
		StoreID: storeID,
		Zipcode: zipcode,
	})
	if len(products) == 0 {
		return nil, false
	}
	for i := range products {
		if products[i].InStock {
			return &products[i], true
		}
	}
	return &products[0], true
}

// BuildCartFromPlan resolves every aggregated ingredient of the plan to a
// store product and stages a cart with the result. Cart quantity is the
// number of packages covering the ingredient quantity, never less than one;
// package units are not reconciled against recipe units, so lines are
// ordered as generic "ea" units. mealplan.ErrMealPlanNotFound and
// retailer.ErrStoreNotFound pass through unchanged.
func (b *Bridge) BuildCartFromPlan(planID, storeID, zipcode string) (*CartBuild, error) {
	list, err := b.plans.GroceryList(planID)
	if err != nil {
		return nil, err
	}

	items := []retailer.ItemInput{}
	unmatched := []recipe.IngredientLine{}

	for _, line := range list.Ingredients {
		product, ok := b.resolveProduct(line, storeID, zipcode)
		if !ok {
			unmatched = append(unmatched, line)
			continue
		}

		packageSize := product.PackageSize
		if packageSize <= 0 {
			packageSize = 1
		}
		quantity := int(math.Ceil(line.Quantity / packageSize))
		if quantity < 1 {
			quantity = 1
		}
		items = append(items, retailer.ItemInput{
			SKU:      product.SKU,
			Quantity: quantity,
			Unit:     "ea",
			Category: product.Category,
		})
	}

	cart, err := b.retailer.CreateCart(storeID, zipcode, items)
	if err != nil {
		return nil, err
	}

	return &CartBuild{
		PlanID:               planID,
		StoreID:              storeID,
		Zipcode:              cart.Zipcode,
		Cart:                 cart,
		UnmatchedIngredients: unmatched,
	}, nil
}
