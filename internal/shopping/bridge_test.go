package shopping

import (
	"errors"
	"testing"

	"grocery-assistant/internal/mealplan"
	"grocery-assistant/internal/recipe"
	"grocery-assistant/internal/retailer"
)

type fixture struct {
	plans  *mealplan.Service
	bridge *Bridge
}

func newFixture() *fixture {
	catalog := recipe.NewStaticCatalog(recipe.SeedRecipes())
	plans := mealplan.NewService(catalog, mealplan.NewMemoryRepository())
	retail := retailer.NewService(retailer.SeedStores(), retailer.SeedCatalog(), retailer.NewMemoryCartRepository(), nil)
	return &fixture{plans: plans, bridge: NewBridge(plans, retail)}
}

func (f *fixture) createPlan(t *testing.T, entries ...mealplan.EntryInput) *mealplan.MealPlan {
	t.Helper()
	plan, err := f.plans.Create(mealplan.CreateInput{Entries: entries})
	if err != nil {
		t.Fatalf("Create plan failed: %v", err)
	}
	return plan
}

func TestBuildCartFromPlanResolvesAllIngredients(t *testing.T) {
	f := newFixture()
	plan := f.createPlan(t, mealplan.EntryInput{RecipeID: "spaghetti-pomodoro", Date: "2024-04-01", Servings: 2})

	build, err := f.bridge.BuildCartFromPlan(plan.ID, "fresh-market-soma", "")
	if err != nil {
		t.Fatalf("BuildCartFromPlan failed: %v", err)
	}

	if build.PlanID != plan.ID {
		t.Errorf("Expected planId %s, got %s", plan.ID, build.PlanID)
	}
	if build.Zipcode != "94107" {
		t.Errorf("Expected zipcode resolved from the store, got %s", build.Zipcode)
	}
	if len(build.UnmatchedIngredients) != 0 {
		t.Errorf("Expected every ingredient matched, got unmatched %v", build.UnmatchedIngredients)
	}

	// Black pepper only matches an out-of-stock product; the bridge still
	// resolves it and the cart engine turns it into a fallback.
	if len(build.Cart.Items) != 6 {
		t.Errorf("Expected 6 validated items, got %d", len(build.Cart.Items))
	}
	if len(build.Cart.Fallbacks) != 1 || build.Cart.Fallbacks[0].SKURequested != "FM-1007" {
		t.Errorf("Expected an out-of-stock fallback for FM-1007, got %v", build.Cart.Fallbacks)
	}

	for _, item := range build.Cart.Items {
		if item.Unit != "ea" {
			t.Errorf("Expected generic ea units, got %s", item.Unit)
		}
		if item.Quantity < 1 {
			t.Errorf("Expected at least one package of %s, got %d", item.SKU, item.Quantity)
		}
	}
}

func TestBuildCartFromPlanPackageRounding(t *testing.T) {
	f := newFixture()
	// 8 servings of a 4-serving recipe: 16 tortillas over 12-count packs.
	plan := f.createPlan(t, mealplan.EntryInput{RecipeID: "citrus-chicken-tacos", Date: "2024-04-01", Servings: 8})

	build, err := f.bridge.BuildCartFromPlan(plan.ID, "fresh-market-soma", "")
	if err != nil {
		t.Fatalf("BuildCartFromPlan failed: %v", err)
	}

	quantities := make(map[string]int)
	for _, item := range build.Cart.Items {
		quantities[item.SKU] = item.Quantity
	}
	if quantities["FM-1009"] != 2 {
		t.Errorf("Expected 2 tortilla packs for 16 tortillas, got %d", quantities["FM-1009"])
	}
	if quantities["FM-1010"] != 4 {
		t.Errorf("Expected 4 limes, got %d", quantities["FM-1010"])
	}
}

func TestBuildCartFromPlanUnmatchedIngredients(t *testing.T) {
	f := newFixture()
	plan := f.createPlan(t, mealplan.EntryInput{RecipeID: "spaghetti-pomodoro", Date: "2024-04-01", Servings: 2})

	// The Mission store stocks no salt or pepper at all.
	build, err := f.bridge.BuildCartFromPlan(plan.ID, "green-grocer-mission", "")
	if err != nil {
		t.Fatalf("BuildCartFromPlan failed: %v", err)
	}

	if len(build.UnmatchedIngredients) != 2 {
		t.Fatalf("Expected 2 unmatched ingredients, got %v", build.UnmatchedIngredients)
	}
	names := map[string]bool{}
	for _, line := range build.UnmatchedIngredients {
		names[line.Ingredient] = true
	}
	if !names["salt"] || !names["black pepper"] {
		t.Errorf("Expected salt and black pepper unmatched, got %v", names)
	}

	for _, item := range build.Cart.Items {
		if item.Name == "Sea Salt" {
			t.Error("Expected unmatched ingredients to be omitted from the cart")
		}
	}
}

func TestBuildCartFromPlanPropagatesNotFound(t *testing.T) {
	f := newFixture()

	if _, err := f.bridge.BuildCartFromPlan("missing-plan", "fresh-market-soma", ""); !errors.Is(err, mealplan.ErrMealPlanNotFound) {
		t.Errorf("Expected ErrMealPlanNotFound, got %v", err)
	}

	plan := f.createPlan(t, mealplan.EntryInput{RecipeID: "veggie-stir-fry", Date: "2024-04-01"})
	if _, err := f.bridge.BuildCartFromPlan(plan.ID, "no-such-store", ""); !errors.Is(err, retailer.ErrStoreNotFound) {
		t.Errorf("Expected ErrStoreNotFound, got %v", err)
	}
}

func TestResolveProductPrefersInStock(t *testing.T) {
	f := newFixture()

	// "basil" matches only one product per store; "snow peas" matches only an
	// out-of-stock product, which is still resolved as a last resort.
	product, ok := f.bridge.resolveProduct(recipe.IngredientLine{Ingredient: "snow peas", Quantity: 150, Unit: "g"}, "fresh-market-soma", "")
	if !ok {
		t.Fatal("Expected snow peas to resolve to the out-of-stock product")
	}
	if product.SKU != "FM-1015" || product.InStock {
		t.Errorf("Expected out-of-stock FM-1015, got %+v", product)
	}

	if _, ok := f.bridge.resolveProduct(recipe.IngredientLine{Ingredient: "saffron", Quantity: 1, Unit: "g"}, "fresh-market-soma", ""); ok {
		t.Error("Expected no match for saffron")
	}
}
