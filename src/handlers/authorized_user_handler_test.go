package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"findash-server/src/db"
	"findash-server/src/db/memory"
	"findash-server/src/models"
	"findash-server/src/service"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withCache enables the report cache for one test and tears it back down
// so the other handler tests keep running cache-less.
func withCache(t *testing.T) {
	t.Helper()
	db.InitCache()
	t.Cleanup(func() {
		db.ClearAllReportCaches()
		db.Cache = nil
	})
}

func deleteRequest(userID string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/authorized-users/"+userID, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("user_id", userID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestDeleteAuthorizedUserClearsReportCaches(t *testing.T) {
	withCache(t)

	mem := memory.New()
	mem.AuthorizedIDs = []int64{1, 2}
	mem.Transactions = []models.Transaction{
		{UserID: 2, Amount: -50, Type: models.TypeExpense, Category: "Food",
			Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	svc := service.New(mem, nil, false)

	summary, ok := svc.FinancialSummary(context.Background(), 1)
	require.True(t, ok)
	require.Equal(t, 50.0, summary.Expenses)
	db.Cache.Wait()

	rr := httptest.NewRecorder()
	DeleteAuthorizedUser(mem)(rr, deleteRequest("2"))
	require.Equal(t, http.StatusNoContent, rr.Code)
	db.Cache.Wait()

	// The removed user's transactions must drop out of the summary
	// immediately, not linger in a cached payload.
	summary, ok = svc.FinancialSummary(context.Background(), 1)
	require.True(t, ok)
	assert.Zero(t, summary.Expenses)
}

func TestCreateAuthorizedUserClearsReportCaches(t *testing.T) {
	withCache(t)

	mem := memory.New()
	mem.AuthorizedIDs = []int64{1}
	mem.Users = []models.User{{ID: 2, Username: "bob", Email: "bob@example.com"}}
	mem.Transactions = []models.Transaction{
		{UserID: 2, Amount: -50, Type: models.TypeExpense, Category: "Food",
			Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)},
	}
	svc := service.New(mem, nil, false)

	summary, ok := svc.FinancialSummary(context.Background(), 1)
	require.True(t, ok)
	require.Zero(t, summary.Expenses)
	db.Cache.Wait()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/authorized-users",
		strings.NewReader(`{"user_id":2}`))
	CreateAuthorizedUser(mem)(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
	db.Cache.Wait()

	summary, ok = svc.FinancialSummary(context.Background(), 1)
	require.True(t, ok)
	assert.Equal(t, 50.0, summary.Expenses)
}

func TestDeleteAuthorizedUserInvalidID(t *testing.T) {
	rr := httptest.NewRecorder()
	DeleteAuthorizedUser(memory.New())(rr, deleteRequest("abc"))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCreateAuthorizedUserUnknownUser(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/authorized-users",
		strings.NewReader(`{"user_id":7}`))
	CreateAuthorizedUser(memory.New())(rr, req)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
