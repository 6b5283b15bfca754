// Package mealplan validates plan entries against the recipe catalog,
// normalizes their dates, and derives aggregated grocery lists.
package mealplan

import (
	"time"

	"grocery-assistant/internal/recipe"
)

// DateLayout is the calendar date format used throughout plans.
const DateLayout = "2006-01-02"

// EntryInput is a raw, unvalidated plan entry as submitted by the caller.
// Rejected inputs are echoed back verbatim in MealPlan.InvalidEntries.
type EntryInput struct {
	RecipeID string `json:"recipeId"`
	Date     string `json:"date"`
	MealType string `json:"mealType"`
	Servings int    `json:"servings"`
}

// Entry is a validated, scheduled recipe occurrence within a plan.
type Entry struct {
	ID       string `json:"id"`
	RecipeID string `json:"recipeId"`
	Date     string `json:"date"`
	MealType string `json:"mealType"`
	Servings int    `json:"servings"`
}

// MealPlan is a persisted plan. Entries are sorted by date, ties broken by
// meal type. InvalidEntries is only present when some inputs were rejected.
type MealPlan struct {
	ID             string       `json:"id"`
	StartDate      string       `json:"startDate"`
	EndDate        string       `json:"endDate"`
	Entries        []Entry      `json:"entries"`
	InvalidEntries []EntryInput `json:"invalidEntries,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
}

// GroceryList is the aggregated shopping view of a plan. It is derived on
// every request, never stored.
type GroceryList struct {
	PlanID      string                  `json:"planId"`
	Ingredients []recipe.IngredientLine `json:"ingredients"`
}
