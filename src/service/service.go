// Package service implements the dashboard actions: authorization gate,
// store reads, aggregation, and the degrade-to-empty policy. A store
// failure on a read path is logged and mapped to the zero view with
// unavailable=true; it is never surfaced to the caller as an error.
package service

import (
	"context"
	"log"
	"math"
	"strconv"
	"strings"
	"time"

	"findash-server/src/db"
	"findash-server/src/models"
	"findash-server/src/reports"
)

const recentTransactionLimit = 10

type Service struct {
	store             db.Store
	budgets           []reports.Budget
	includeUnbudgeted bool
	now               func() time.Time
}

func New(store db.Store, budgets []reports.Budget, includeUnbudgeted bool) *Service {
	if len(budgets) == 0 {
		budgets = reports.DefaultBudgets()
	}
	return &Service{
		store:             store,
		budgets:           budgets,
		includeUnbudgeted: includeUnbudgeted,
		now:               time.Now,
	}
}

// IsAuthorized reports whether the user is on the allow-list. The list is
// re-read on every call, and a store failure fails closed.
func (s *Service) IsAuthorized(ctx context.Context, userID int64) bool {
	ids, err := s.store.GetAuthorizedUserIDs(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch authorized users: %v", err)
		return false
	}
	for _, id := range ids {
		if id == userID {
			return true
		}
	}
	return false
}

// authorizedOwners returns the full allow-list; transactions of every
// authorized user are visible to every other authorized user.
func (s *Service) authorizedOwners(ctx context.Context) ([]int64, error) {
	return s.store.GetAuthorizedUserIDs(ctx)
}

// RecentTransactions returns the ten newest transactions across all
// authorized owners. The second result is false when the data could not
// be fetched, distinguishing "store down" from "no data yet".
func (s *Service) RecentTransactions(ctx context.Context, userID int64) ([]models.Transaction, bool) {
	if !s.IsAuthorized(ctx, userID) {
		return []models.Transaction{}, true
	}
	if cached, ok := db.GetReportCache("recent"); ok {
		if txns, ok := cached.([]models.Transaction); ok {
			return txns, true
		}
	}
	owners, err := s.authorizedOwners(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch transactions: %v", err)
		return []models.Transaction{}, false
	}
	txns, err := s.store.GetTransactions(ctx, db.TransactionFilter{
		Owners:   owners,
		DateDesc: true,
		Limit:    recentTransactionLimit,
	})
	if err != nil {
		log.Printf("ERROR: Failed to fetch transactions: %v", err)
		return []models.Transaction{}, false
	}
	if txns == nil {
		txns = []models.Transaction{}
	}
	db.SetReportCache("recent", txns)
	return txns, true
}

func (s *Service) FinancialSummary(ctx context.Context, userID int64) (models.FinancialSummary, bool) {
	if !s.IsAuthorized(ctx, userID) {
		return models.FinancialSummary{}, true
	}
	if cached, ok := db.GetReportCache("summary"); ok {
		if summary, ok := cached.(models.FinancialSummary); ok {
			return summary, true
		}
	}
	txns, err := s.fetchAll(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch financial summary: %v", err)
		return models.FinancialSummary{}, false
	}
	summary := reports.Summarize(txns)
	db.SetReportCache("summary", summary)
	return summary, true
}

func (s *Service) ExpenseBreakdown(ctx context.Context, userID int64) ([]models.CategoryBucket, bool) {
	if !s.IsAuthorized(ctx, userID) {
		return []models.CategoryBucket{}, true
	}
	if cached, ok := db.GetReportCache("breakdown"); ok {
		if buckets, ok := cached.([]models.CategoryBucket); ok {
			return buckets, true
		}
	}
	owners, err := s.authorizedOwners(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch expense breakdown: %v", err)
		return []models.CategoryBucket{}, false
	}
	txns, err := s.store.GetTransactions(ctx, db.TransactionFilter{
		Owners: owners,
		Type:   models.TypeExpense,
	})
	if err != nil {
		log.Printf("ERROR: Failed to fetch expense breakdown: %v", err)
		return []models.CategoryBucket{}, false
	}
	buckets := reports.ExpenseBreakdown(txns)
	db.SetReportCache("breakdown", buckets)
	return buckets, true
}

// MonthlyData returns twelve income/expense buckets for the given year.
func (s *Service) MonthlyData(ctx context.Context, userID int64, year int) ([]models.MonthlyBucket, bool) {
	if !s.IsAuthorized(ctx, userID) {
		return []models.MonthlyBucket{}, true
	}
	cacheKey := "monthly:" + strconv.Itoa(year)
	if cached, ok := db.GetReportCache(cacheKey); ok {
		if buckets, ok := cached.([]models.MonthlyBucket); ok {
			return buckets, true
		}
	}
	owners, err := s.authorizedOwners(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch monthly data: %v", err)
		return []models.MonthlyBucket{}, false
	}
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	txns, err := s.store.GetTransactions(ctx, db.TransactionFilter{
		Owners: owners,
		From:   from,
		To:     from.AddDate(1, 0, 0),
	})
	if err != nil {
		log.Printf("ERROR: Failed to fetch monthly data: %v", err)
		return []models.MonthlyBucket{}, false
	}
	buckets := reports.MonthlyData(txns)
	db.SetReportCache(cacheKey, buckets)
	return buckets, true
}

// SpendingTrends buckets recent expenses by period granularity, optionally
// narrowed to one category. "all" (or empty) means every category.
func (s *Service) SpendingTrends(ctx context.Context, userID int64, period, category string) ([]models.TrendPoint, bool) {
	if !s.IsAuthorized(ctx, userID) {
		return []models.TrendPoint{}, true
	}
	owners, err := s.authorizedOwners(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch trend data: %v", err)
		return []models.TrendPoint{}, false
	}
	now := s.now()
	filter := db.TransactionFilter{
		Owners: owners,
		Type:   models.TypeExpense,
		From:   reports.PeriodStart(period, now),
		To:     now,
	}
	if category != "" && category != "all" {
		filter.Category = category
	}
	txns, err := s.store.GetTransactions(ctx, filter)
	if err != nil {
		log.Printf("ERROR: Failed to fetch trend data: %v", err)
		return []models.TrendPoint{}, false
	}
	points := reports.SpendingTrends(txns, period)
	if points == nil {
		points = []models.TrendPoint{}
	}
	return points, true
}

// BudgetComparison pairs budgets against actual spending for one calendar
// month. Month is 1-12.
func (s *Service) BudgetComparison(ctx context.Context, userID int64, month, year int) ([]models.BudgetRow, bool) {
	if !s.IsAuthorized(ctx, userID) {
		return []models.BudgetRow{}, true
	}
	owners, err := s.authorizedOwners(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch budget data: %v", err)
		return []models.BudgetRow{}, false
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	txns, err := s.store.GetTransactions(ctx, db.TransactionFilter{
		Owners: owners,
		Type:   models.TypeExpense,
		From:   from,
		To:     from.AddDate(0, 1, 0),
	})
	if err != nil {
		log.Printf("ERROR: Failed to fetch budget data: %v", err)
		return []models.BudgetRow{}, false
	}
	return reports.BudgetComparison(txns, s.budgets, s.includeUnbudgeted), true
}

func (s *Service) Categories(ctx context.Context, userID int64, categoryType string) ([]models.Category, bool) {
	if !s.IsAuthorized(ctx, userID) {
		return []models.Category{}, true
	}
	owners, err := s.authorizedOwners(ctx)
	if err != nil {
		log.Printf("ERROR: Failed to fetch categories: %v", err)
		return []models.Category{}, false
	}
	categories, err := s.store.GetCategories(ctx, owners, categoryType)
	if err != nil {
		log.Printf("ERROR: Failed to fetch categories: %v", err)
		return []models.Category{}, false
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, true
}

// AddTransaction validates and inserts one transaction, stamped with the
// current time. Expense amounts are stored negative regardless of the
// sign submitted.
func (s *Service) AddTransaction(ctx context.Context, userID int64, req models.AddTransactionRequest) models.ActionResult {
	if !s.IsAuthorized(ctx, userID) {
		return models.ActionResult{Success: false, Error: "user not authorized"}
	}

	if strings.TrimSpace(req.Description) == "" {
		return models.ActionResult{Success: false, Error: "description is required"}
	}
	if math.IsNaN(req.Amount) || req.Amount <= 0 {
		return models.ActionResult{Success: false, Error: "amount must be a positive number"}
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		return models.ActionResult{Success: false, Error: "type must be income or expense"}
	}
	if strings.TrimSpace(req.Category) == "" {
		return models.ActionResult{Success: false, Error: "category is required"}
	}

	amount := req.Amount
	if req.Type == models.TypeExpense {
		amount = -amount
	}

	created, err := s.store.InsertTransaction(ctx, &models.Transaction{
		Description: req.Description,
		Amount:      amount,
		Date:        s.now(),
		Category:    req.Category,
		Type:        req.Type,
		UserID:      userID,
	})
	if err != nil {
		log.Printf("ERROR: Failed to add transaction for user %d: %v", userID, err)
		return models.ActionResult{Success: false, Error: "failed to add transaction"}
	}

	log.Printf("INFO: Added transaction id %d for user %d, category %s", created.ID, userID, created.Category)
	db.ClearAllReportCaches()
	return models.ActionResult{Success: true}
}

// AddCategory validates and inserts one category label. Empty name or
// type is rejected before the store is contacted.
func (s *Service) AddCategory(ctx context.Context, userID int64, req models.AddCategoryRequest) models.ActionResult {
	if !s.IsAuthorized(ctx, userID) {
		return models.ActionResult{Success: false, Error: "user not authorized"}
	}

	if strings.TrimSpace(req.Name) == "" || req.Type == "" {
		return models.ActionResult{Success: false, Error: "name and type are required"}
	}
	if req.Type != models.TypeIncome && req.Type != models.TypeExpense {
		return models.ActionResult{Success: false, Error: "type must be income or expense"}
	}

	created, err := s.store.InsertCategory(ctx, &models.Category{
		Name:   req.Name,
		Type:   req.Type,
		UserID: userID,
	})
	if err != nil {
		log.Printf("ERROR: Failed to add category for user %d: %v", userID, err)
		return models.ActionResult{Success: false, Error: "failed to add category"}
	}

	log.Printf("INFO: Added category id %d (%s) for user %d", created.ID, created.Name, userID)
	db.ClearAllReportCaches()
	return models.ActionResult{Success: true}
}

func (s *Service) fetchAll(ctx context.Context) ([]models.Transaction, error) {
	owners, err := s.authorizedOwners(ctx)
	if err != nil {
		return nil, err
	}
	return s.store.GetTransactions(ctx, db.TransactionFilter{Owners: owners})
}
