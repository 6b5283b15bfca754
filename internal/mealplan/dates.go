package mealplan

import (
	"sort"
	"time"
)

func parseDate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// normalizeDate returns s if it is a valid calendar date, otherwise "". An
// empty date is later replaced with the plan start.
func normalizeDate(s string) string {
	if _, ok := parseDate(s); ok {
		return s
	}
	return ""
}

// sortEntries orders entries by date ascending, ties broken by meal type.
// ISO dates compare correctly as strings.
func sortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date != entries[j].Date {
			return entries[i].Date < entries[j].Date
		}
		return entries[i].MealType < entries[j].MealType
	})
}
