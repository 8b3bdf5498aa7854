package pipeline

import (
	"strings"

	"github.com/theirongolddev/saveup/internal/model"
)

// FilterExpenses returns the expenses whose name contains query, ignoring
// case. Order is preserved and an empty query returns the input.
func FilterExpenses(expenses []model.Expense, query string) []model.Expense {
	query = strings.TrimSpace(query)
	if query == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if containsIgnoreCase(e.Name, query) {
			result = append(result, e)
		}
	}
	return result
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
