package mealplan

import "errors"

// ErrMealPlanNotFound is returned for lookups against an unknown plan id.
var ErrMealPlanNotFound = errors.New("meal plan not found")

// NoValidEntriesError is returned by Create when every submitted entry
// referenced an unknown recipe. The rejected inputs ride along so the caller
// can show the user what was refused; no plan is persisted.
type NoValidEntriesError struct {
	InvalidEntries []EntryInput
}

func (e *NoValidEntriesError) Error() string {
	return "meal plan has no valid entries"
}
