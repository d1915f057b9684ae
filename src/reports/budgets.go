package reports

import (
	"sort"

	"findash-server/src/models"
)

// Budget pairs a category with its monthly budgeted amount.
type Budget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

// DefaultBudgets returns the built-in monthly budget set, used unless
// overridden by configuration.
func DefaultBudgets() []Budget {
	return []Budget{
		{Category: "Housing", Amount: 1200},
		{Category: "Food", Amount: 500},
		{Category: "Transportation", Amount: 300},
		{Category: "Entertainment", Amount: 200},
		{Category: "Utilities", Amount: 200},
	}
}

// BudgetComparison pairs each budget against actual spending in the given
// transaction list. Actual defaults to zero for categories with no
// spending. When includeUnbudgeted is set, categories with spending but
// no budget are appended as budget-zero rows (sorted by label) instead of
// being dropped.
func BudgetComparison(txns []models.Transaction, budgets []Budget, includeUnbudgeted bool) []models.BudgetRow {
	actual := make(map[string]float64)
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		actual[t.Category] += abs(t.Amount)
	}

	rows := make([]models.BudgetRow, 0, len(budgets))
	budgeted := make(map[string]bool, len(budgets))
	for _, b := range budgets {
		budgeted[b.Category] = true
		rows = append(rows, models.BudgetRow{
			Category: b.Category,
			Budget:   b.Amount,
			Actual:   actual[b.Category],
		})
	}

	if includeUnbudgeted {
		var extra []models.BudgetRow
		for category, amount := range actual {
			if !budgeted[category] {
				extra = append(extra, models.BudgetRow{Category: category, Actual: amount})
			}
		}
		sort.Slice(extra, func(i, j int) bool { return extra[i].Category < extra[j].Category })
		rows = append(rows, extra...)
	}
	return rows
}
