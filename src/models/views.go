package models

// Derived views, recomputed on demand from transaction lists. None of
// these are persisted.

type FinancialSummary struct {
	Balance  float64 `json:"balance"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Savings  float64 `json:"savings"`
}

// CategoryBucket is one slice of the expense breakdown.
type CategoryBucket struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// MonthlyBucket holds income and expense totals for one calendar month.
// A full-year report always carries 12 of these, January through December.
type MonthlyBucket struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// TrendPoint is one time bucket of the spending trend. Date keeps the
// wire format of the bucketing granularity: "2024-03-05" (daily),
// "2024-3-W1" (weekly) or "2024-3" (monthly).
type TrendPoint struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type BudgetRow struct {
	Category string  `json:"category"`
	Budget   float64 `json:"budget"`
	Actual   float64 `json:"actual"`
}
