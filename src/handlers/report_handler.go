package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"findash-server/src/service"
)

// unavailableHeader marks a degraded response: the payload is the zero
// view because the store could not be reached, not because no data
// exists. The status stays 200 so the dashboard keeps rendering.
const unavailableHeader = "X-Data-Unavailable"

func writeReport(w http.ResponseWriter, payload interface{}, ok bool) {
	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.Header().Set(unavailableHeader, "true")
	}
	json.NewEncoder(w).Encode(payload)
}

func GetRecentTransactions(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		txns, ok := svc.RecentTransactions(r.Context(), userID)
		writeReport(w, txns, ok)
	}
}

func GetFinancialSummary(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		summary, ok := svc.FinancialSummary(r.Context(), userID)
		writeReport(w, summary, ok)
	}
}

func GetExpenseBreakdown(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		buckets, ok := svc.ExpenseBreakdown(r.Context(), userID)
		writeReport(w, buckets, ok)
	}
}

func GetMonthlyData(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		year := time.Now().Year()
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				log.Printf("ERROR: Invalid year param: %s", yearStr)
				http.Error(w, "invalid year", http.StatusBadRequest)
				return
			}
			year = parsed
		}
		buckets, ok := svc.MonthlyData(r.Context(), userID, year)
		writeReport(w, buckets, ok)
	}
}

func GetSpendingTrends(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		period := r.URL.Query().Get("period")
		category := r.URL.Query().Get("category")
		points, ok := svc.SpendingTrends(r.Context(), userID, period, category)
		writeReport(w, points, ok)
	}
}

func GetBudgetComparison(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		now := time.Now()
		month := int(now.Month())
		year := now.Year()

		if monthStr := r.URL.Query().Get("month"); monthStr != "" {
			parsed, err := strconv.Atoi(monthStr)
			if err != nil || parsed < 1 || parsed > 12 {
				log.Printf("ERROR: Invalid month param: %s", monthStr)
				http.Error(w, "invalid month", http.StatusBadRequest)
				return
			}
			month = parsed
		}
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			parsed, err := strconv.Atoi(yearStr)
			if err != nil {
				log.Printf("ERROR: Invalid year param: %s", yearStr)
				http.Error(w, "invalid year", http.StatusBadRequest)
				return
			}
			year = parsed
		}

		rows, ok := svc.BudgetComparison(r.Context(), userID, month, year)
		writeReport(w, rows, ok)
	}
}
