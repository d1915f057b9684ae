package reports

import (
	"fmt"
	"sort"
	"time"

	"findash-server/src/models"
)

// SavingsRate is the fixed share of income reported as savings.
const SavingsRate = 0.10

// Summarize computes the overall totals for a transaction list.
// Expense amounts are stored negative, so they are summed as absolutes.
func Summarize(txns []models.Transaction) models.FinancialSummary {
	var income, expenses float64
	for _, t := range txns {
		switch t.Type {
		case models.TypeIncome:
			income += t.Amount
		case models.TypeExpense:
			expenses += abs(t.Amount)
		}
	}
	return models.FinancialSummary{
		Balance:  income - expenses,
		Income:   income,
		Expenses: expenses,
		Savings:  income * SavingsRate,
	}
}

// ExpenseBreakdown groups expense transactions by category label and sums
// absolute amounts. Buckets are ordered by descending total, ties broken
// by label, so the output is deterministic.
func ExpenseBreakdown(txns []models.Transaction) []models.CategoryBucket {
	totals := make(map[string]float64)
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		totals[t.Category] += abs(t.Amount)
	}

	buckets := make([]models.CategoryBucket, 0, len(totals))
	for label, value := range totals {
		buckets = append(buckets, models.CategoryBucket{Label: label, Value: value})
	}
	sort.Slice(buckets, func(i, j int) bool {
		if buckets[i].Value != buckets[j].Value {
			return buckets[i].Value > buckets[j].Value
		}
		return buckets[i].Label < buckets[j].Label
	})
	return buckets
}

// MonthlyData buckets a year's transactions into exactly 12 calendar
// months, January through December, summing income and expenses
// separately. Months without transactions keep zero totals. The
// transaction timestamp is read as scanned from the store, so the local
// calendar month of the stored value decides the bucket.
func MonthlyData(txns []models.Transaction) []models.MonthlyBucket {
	buckets := make([]models.MonthlyBucket, 12)
	for i := range buckets {
		buckets[i].Month = time.Month(i + 1).String()
	}
	for _, t := range txns {
		b := &buckets[int(t.Date.Month())-1]
		switch t.Type {
		case models.TypeIncome:
			b.Income += t.Amount
		case models.TypeExpense:
			b.Expenses += abs(t.Amount)
		}
	}
	return buckets
}

// PeriodStart resolves a trend period token to its window start.
// Unrecognized tokens fall back to six months.
func PeriodStart(period string, now time.Time) time.Time {
	switch period {
	case "30days":
		return now.AddDate(0, 0, -30)
	case "3months":
		return now.AddDate(0, -3, 0)
	case "6months":
		return now.AddDate(0, -6, 0)
	case "1year":
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -6, 0)
	}
}

// trendKey identifies one trend bucket. Keys are compared numerically by
// component so buckets come back in chronological order regardless of how
// the label formats their digits.
type trendKey struct {
	year  int
	month int
	day   int
	week  int
}

func (k trendKey) less(o trendKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	if k.month != o.month {
		return k.month < o.month
	}
	if k.day != o.day {
		return k.day < o.day
	}
	return k.week < o.week
}

// label renders the bucket key in the granularity's wire format:
// "2024-03-05" for daily, "2024-3-W1" for weekly, "2024-3" for monthly.
func (k trendKey) label(period string) string {
	switch period {
	case "30days":
		return fmt.Sprintf("%04d-%02d-%02d", k.year, k.month, k.day)
	case "3months":
		return fmt.Sprintf("%d-%d-W%d", k.year, k.month, k.week)
	default:
		return fmt.Sprintf("%d-%d", k.year, k.month)
	}
}

// SpendingTrends buckets expense transactions by time period: daily for
// the 30-day window, by week-of-month for the 3-month window, monthly
// otherwise. Amounts are summed as absolutes and the points returned in
// chronological order.
func SpendingTrends(txns []models.Transaction, period string) []models.TrendPoint {
	totals := make(map[trendKey]float64)
	for _, t := range txns {
		if t.Type != models.TypeExpense {
			continue
		}
		key := trendKey{year: t.Date.Year(), month: int(t.Date.Month())}
		switch period {
		case "30days":
			key.day = t.Date.Day()
		case "3months":
			key.week = t.Date.Day() / 7
		}
		totals[key] += abs(t.Amount)
	}

	keys := make([]trendKey, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].less(keys[j]) })

	points := make([]models.TrendPoint, 0, len(keys))
	for _, k := range keys {
		points = append(points, models.TrendPoint{Date: k.label(period), Amount: totals[k]})
	}
	return points
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
