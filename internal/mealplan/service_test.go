package mealplan

import (
	"errors"
	"testing"
	"time"

	"grocery-assistant/internal/recipe"
)

func testCatalog() recipe.Catalog {
	return recipe.NewStaticCatalog([]recipe.Recipe{
		{
			ID:       "pasta",
			Title:    "Pasta",
			Servings: 2,
			Ingredients: []recipe.IngredientLine{
				{Ingredient: "spaghetti", Quantity: 200, Unit: "g"},
				{Ingredient: "garlic", Quantity: 3, Unit: "cloves"},
			},
		},
		{
			ID:       "stir-fry",
			Title:    "Stir-Fry",
			Servings: 2,
			Ingredients: []recipe.IngredientLine{
				{Ingredient: "garlic", Quantity: 2, Unit: "cloves"},
				{Ingredient: "soy sauce", Quantity: 3, Unit: "tbsp"},
			},
		},
	})
}

func testService() *Service {
	return NewService(testCatalog(), NewMemoryRepository())
}

func TestCreateInfersDatesFromEntries(t *testing.T) {
	svc := testService()

	plan, err := svc.Create(CreateInput{Entries: []EntryInput{
		{RecipeID: "pasta", Date: "2024-04-01", Servings: 4},
		{RecipeID: "stir-fry", Date: "2024-04-02", Servings: 3},
	}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if plan.StartDate != "2024-04-01" {
		t.Errorf("Expected startDate 2024-04-01, got %s", plan.StartDate)
	}
	if plan.EndDate != "2024-04-07" {
		t.Errorf("Expected endDate 2024-04-07, got %s", plan.EndDate)
	}
	if len(plan.Entries) != 2 {
		t.Errorf("Expected 2 entries, got %d", len(plan.Entries))
	}
	if plan.InvalidEntries != nil {
		t.Errorf("Expected no invalid entries, got %v", plan.InvalidEntries)
	}
}

func TestCreateEndDateCoversWeekAndLatestEntry(t *testing.T) {
	t.Run("WeekWindowWins", func(t *testing.T) {
		plan, err := testService().Create(CreateInput{
			StartDate: "2024-06-12",
			Entries: []EntryInput{
				{RecipeID: "pasta", Date: "2024-06-15"},
			},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if plan.EndDate != "2024-06-18" {
			t.Errorf("Expected endDate 2024-06-18 (start+6), got %s", plan.EndDate)
		}
	})

	t.Run("LatestEntryWins", func(t *testing.T) {
		plan, err := testService().Create(CreateInput{
			StartDate: "2024-06-12",
			Entries: []EntryInput{
				{RecipeID: "pasta", Date: "2024-06-25"},
			},
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if plan.EndDate != "2024-06-25" {
			t.Errorf("Expected endDate 2024-06-25, got %s", plan.EndDate)
		}
	})
}

func TestCreateSortsEntriesByDateThenMealType(t *testing.T) {
	plan, err := testService().Create(CreateInput{Entries: []EntryInput{
		{RecipeID: "pasta", Date: "2024-04-02", MealType: "dinner"},
		{RecipeID: "stir-fry", Date: "2024-04-01", MealType: "dinner"},
		{RecipeID: "pasta", Date: "2024-04-01", MealType: "breakfast"},
	}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got := make([]string, 0, len(plan.Entries))
	for _, e := range plan.Entries {
		got = append(got, e.Date+"/"+e.MealType)
	}
	want := []string{"2024-04-01/breakfast", "2024-04-01/dinner", "2024-04-02/dinner"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected entry %d to be %s, got %s", i, want[i], got[i])
		}
	}
}

func TestCreateDefaultsServingsAndDates(t *testing.T) {
	svc := testService()
	svc.now = func() time.Time { return time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC) }

	plan, err := svc.Create(CreateInput{Entries: []EntryInput{
		{RecipeID: "pasta", Date: "not-a-date"},
		{RecipeID: "stir-fry"},
	}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if plan.StartDate != "2024-05-10" {
		t.Errorf("Expected startDate to fall back to today, got %s", plan.StartDate)
	}
	if plan.EndDate != "2024-05-16" {
		t.Errorf("Expected endDate 2024-05-16, got %s", plan.EndDate)
	}
	for _, entry := range plan.Entries {
		if entry.Date != "2024-05-10" {
			t.Errorf("Expected dateless entry to get the start date, got %s", entry.Date)
		}
		if entry.Servings != 2 {
			t.Errorf("Expected servings to default to the recipe's base 2, got %d", entry.Servings)
		}
		if entry.ID == "" {
			t.Error("Expected entry to get a generated id")
		}
	}
}

func TestCreateAllEntriesInvalid(t *testing.T) {
	svc := testService()

	_, err := svc.Create(CreateInput{Entries: []EntryInput{
		{RecipeID: "ghost-recipe", Date: "2024-04-01"},
		{RecipeID: "another-ghost", Date: "2024-04-02"},
	}})

	var noValid *NoValidEntriesError
	if !errors.As(err, &noValid) {
		t.Fatalf("Expected NoValidEntriesError, got %v", err)
	}
	if len(noValid.InvalidEntries) != 2 {
		t.Errorf("Expected 2 invalid entries, got %d", len(noValid.InvalidEntries))
	}

	plans, err := svc.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(plans) != 0 {
		t.Errorf("Expected no plan persisted, got %d", len(plans))
	}
}

func TestCreatePartialInvalidStillPersists(t *testing.T) {
	svc := testService()

	plan, err := svc.Create(CreateInput{Entries: []EntryInput{
		{RecipeID: "pasta", Date: "2024-04-01"},
		{RecipeID: "stir-fry", Date: "2024-04-02"},
		{RecipeID: "ghost-recipe", Date: "2024-04-03"},
	}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if len(plan.Entries) != 2 {
		t.Errorf("Expected 2 valid entries, got %d", len(plan.Entries))
	}
	if len(plan.InvalidEntries) != 1 {
		t.Errorf("Expected 1 invalid entry, got %d", len(plan.InvalidEntries))
	}
	if plan.InvalidEntries[0].RecipeID != "ghost-recipe" {
		t.Errorf("Expected the rejected entry to be echoed verbatim, got %+v", plan.InvalidEntries[0])
	}

	stored, err := svc.Get(plan.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.ID != plan.ID {
		t.Errorf("Expected stored plan %s, got %s", plan.ID, stored.ID)
	}
}

func TestGetUnknownPlan(t *testing.T) {
	if _, err := testService().Get("missing"); !errors.Is(err, ErrMealPlanNotFound) {
		t.Errorf("Expected ErrMealPlanNotFound, got %v", err)
	}
}

func TestGroceryListMergesScaledRecipes(t *testing.T) {
	svc := testService()

	plan, err := svc.Create(CreateInput{Entries: []EntryInput{
		{RecipeID: "pasta", Date: "2024-04-01", Servings: 4},
		{RecipeID: "stir-fry", Date: "2024-04-02", Servings: 3},
	}})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	list, err := svc.GroceryList(plan.ID)
	if err != nil {
		t.Fatalf("GroceryList failed: %v", err)
	}
	if list.PlanID != plan.ID {
		t.Errorf("Expected planId %s, got %s", plan.ID, list.PlanID)
	}

	quantities := make(map[string]float64)
	for _, line := range list.Ingredients {
		quantities[line.Ingredient+"|"+line.Unit] = line.Quantity
	}
	// pasta at 4 of 2 servings doubles; stir-fry at 3 of 2 scales by 1.5.
	if quantities["spaghetti|g"] != 400 {
		t.Errorf("Expected 400 g spaghetti, got %v", quantities["spaghetti|g"])
	}
	if quantities["garlic|cloves"] != 9 {
		t.Errorf("Expected 9 cloves garlic (6 + 3), got %v", quantities["garlic|cloves"])
	}
	if quantities["soy sauce|tbsp"] != 4.5 {
		t.Errorf("Expected 4.5 tbsp soy sauce, got %v", quantities["soy sauce|tbsp"])
	}
}

func TestGroceryListUnknownPlan(t *testing.T) {
	list, err := testService().GroceryList("missing")
	if !errors.Is(err, ErrMealPlanNotFound) {
		t.Errorf("Expected ErrMealPlanNotFound, got %v", err)
	}
	if list != nil {
		t.Errorf("Expected no partial data, got %+v", list)
	}
}
