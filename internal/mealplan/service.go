package mealplan

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"grocery-assistant/internal/grocery"
	"grocery-assistant/internal/recipe"
)

// Service owns meal plan creation and grocery list derivation.
type Service struct {
	catalog recipe.Catalog
	repo    Repository
	now     func() time.Time
}

// NewService creates a Service over the given catalog and plan store.
func NewService(catalog recipe.Catalog, repo Repository) *Service {
	return &Service{
		catalog: catalog,
		repo:    repo,
		now:     time.Now,
	}
}

// CreateInput is the request to build a new plan. StartDate is optional; when
// absent or unparseable the earliest entry date (or today) is used.
type CreateInput struct {
	StartDate string       `json:"startDate"`
	Entries   []EntryInput `json:"entries"`
}

// Create validates the submitted entries against the catalog and persists a
// plan built from the valid subset. Entries referencing unknown recipes are
// reported back on the plan, not treated as a failure. If every entry is
// invalid a NoValidEntriesError is returned and nothing is stored. The resulting plan always spans at least seven days from its start
// and always covers its furthest-scheduled entry.
func (s *Service) Create(input CreateInput) (*MealPlan, error) {
	var entries []Entry
	var invalid []EntryInput

	for _, raw := range input.Entries {
		rec, ok := s.catalog.Get(raw.RecipeID)
		if !ok {
			invalid = append(invalid, raw)
			continue
		}
		servings := raw.Servings
		if servings <= 0 {
			servings = rec.Servings
		}
		entries = append(entries, Entry{
			ID:       uuid.NewString(),
			RecipeID: raw.RecipeID,
			Date:     normalizeDate(raw.Date),
			MealType: raw.MealType,
			Servings: servings,
		})
	}

	if len(entries) == 0 {
		return nil, &NoValidEntriesError{InvalidEntries: invalid}
	}

	start := s.resolveStart(input.StartDate, entries)
	startStr := start.Format(DateLayout)
	for i := range entries {
		if entries[i].Date == "" {
			entries[i].Date = startStr
		}
	}

	sortEntries(entries)

	end := start.AddDate(0, 0, 6)
	if latest, ok := parseDate(entries[len(entries)-1].Date); ok && latest.After(end) {
		end = latest
	}

	plan := &MealPlan{
		ID:             uuid.NewString(),
		StartDate:      startStr,
		EndDate:        end.Format(DateLayout),
		Entries:        entries,
		InvalidEntries: invalid,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.repo.Put(plan); err != nil {
		return nil, fmt.Errorf("failed to store meal plan: %w", err)
	}
	return plan, nil
}

// Get returns the plan with the given id.
func (s *Service) Get(id string) (*MealPlan, error) {
	plan, err := s.repo.Get(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load meal plan %s: %w", id, err)
	}
	if plan == nil {
		return nil, ErrMealPlanNotFound
	}
	return plan, nil
}

// List returns every stored plan.
func (s *Service) List() ([]*MealPlan, error) {
	plans, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list meal plans: %w", err)
	}
	return plans, nil
}

// GroceryList scales each entry's recipe to the entry's servings and merges
// everything into one list. Entries whose recipe is missing from the catalog
// are skipped; the catalog is static, so this should not happen in practice.
func (s *Service) GroceryList(planID string) (*GroceryList, error) {
	plan, err := s.Get(planID)
	if err != nil {
		return nil, err
	}

	lists := make([][]recipe.IngredientLine, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		rec, ok := s.catalog.Get(entry.RecipeID)
		if !ok {
			continue
		}
		factor := float64(entry.Servings) / float64(rec.Servings)
		lists = append(lists, grocery.Scale(rec.Ingredients, factor))
	}

	return &GroceryList{PlanID: planID, Ingredients: grocery.Aggregate(lists...)}, nil
}

// resolveStart picks the plan start: the caller's date if parseable, else the
// earliest dated entry, else today.
func (s *Service) resolveStart(startDate string, entries []Entry) time.Time {
	if start, ok := parseDate(startDate); ok {
		return start
	}
	var earliest time.Time
	found := false
	for _, entry := range entries {
		d, ok := parseDate(entry.Date)
		if !ok {
			continue
		}
		if !found || d.Before(earliest) {
			earliest = d
			found = true
		}
	}
	if found {
		return earliest
	}
	today := s.now().UTC()
	return time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
}
