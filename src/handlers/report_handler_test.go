package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"findash-server/src/db/memory"
	"findash-server/src/models"
	"findash-server/src/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDeps(t *testing.T) (*service.Service, *memory.Memory) {
	t.Helper()
	mem := memory.New()
	mem.AuthorizedIDs = []int64{1}
	return service.New(mem, nil, false), mem
}

func asUser(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), "user_id", userID)
	return req.WithContext(ctx)
}

func TestGetFinancialSummary(t *testing.T) {
	svc, mem := newTestDeps(t)
	mem.Transactions = []models.Transaction{
		{UserID: 1, Amount: 1000, Type: models.TypeIncome, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{UserID: 1, Amount: -50, Type: models.TypeExpense, Category: "Food", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}

	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil), 1)
	GetFinancialSummary(svc)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-Data-Unavailable"))

	var summary models.FinancialSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, models.FinancialSummary{Balance: 950, Income: 1000, Expenses: 50, Savings: 100}, summary)
}

func TestGetFinancialSummaryUnauthorizedIsZero(t *testing.T) {
	svc, mem := newTestDeps(t)
	mem.Transactions = []models.Transaction{
		{UserID: 1, Amount: 1000, Type: models.TypeIncome, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil), 42)
	GetFinancialSummary(svc)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, rr.Header().Get("X-Data-Unavailable"))

	var summary models.FinancialSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, models.FinancialSummary{}, summary)
}

func TestGetFinancialSummaryStoreFailureDegrades(t *testing.T) {
	svc, mem := newTestDeps(t)
	mem.TransactionsErr = errors.New("connection refused")

	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/reports/summary", nil), 1)
	GetFinancialSummary(svc)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "true", rr.Header().Get("X-Data-Unavailable"))
}

func TestGetRecentTransactionsUnauthorizedIsEmptyList(t *testing.T) {
	svc, mem := newTestDeps(t)
	mem.Transactions = []models.Transaction{
		{UserID: 1, Amount: -50, Type: models.TypeExpense, Category: "Food", Date: time.Now()},
	}

	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/transactions", nil), 42)
	GetRecentTransactions(svc)(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "[]\n", rr.Body.String())
}

func TestGetMonthlyDataInvalidYear(t *testing.T) {
	svc, _ := newTestDeps(t)

	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/reports/monthly?year=abc", nil), 1)
	GetMonthlyData(svc)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetBudgetComparisonInvalidMonth(t *testing.T) {
	svc, _ := newTestDeps(t)

	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodGet, "/api/reports/budget?month=13", nil), 1)
	GetBudgetComparison(svc)(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestAddTransactionValidationFailure(t *testing.T) {
	svc, mem := newTestDeps(t)

	body := strings.NewReader(`{"description":"","amount":10,"category":"Food","type":"expense"}`)
	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/transactions", body), 1)
	AddTransaction(svc)(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var result models.ActionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
	assert.Zero(t, mem.TransactionInserts)
}

func TestAddTransactionSuccess(t *testing.T) {
	svc, mem := newTestDeps(t)

	body := strings.NewReader(`{"description":"Groceries","amount":42.5,"category":"Food","type":"expense"}`)
	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/transactions", body), 1)
	AddTransaction(svc)(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var result models.ActionResult
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.True(t, result.Success)
	require.Len(t, mem.Transactions, 1)
	assert.Equal(t, -42.5, mem.Transactions[0].Amount)
}

func TestAddCategoryEmptyNameNoStoreWrite(t *testing.T) {
	svc, mem := newTestDeps(t)

	body := strings.NewReader(`{"name":"","type":"expense"}`)
	rr := httptest.NewRecorder()
	req := asUser(httptest.NewRequest(http.MethodPost, "/api/categories", body), 1)
	AddCategory(svc)(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, mem.CategoryInserts)
}
