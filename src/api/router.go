package api

import (
	"net/http"

	"findash-server/src/db"
	"findash-server/src/handlers"
	"findash-server/src/middleware"
	"findash-server/src/service"

	"github.com/go-chi/chi/v5"
)

func NewRouter(store db.Store, svc *service.Service, pages *handlers.Pages, allowedOrigins []string, isDemo bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.DemoModeMiddleware(isDemo))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	// Server-rendered pages
	r.Get("/", pages.Dashboard)
	r.Get("/login", pages.LoginPage)
	r.Post("/login", pages.LoginSubmit)
	r.Post("/logout", pages.Logout)

	r.Route("/api", func(r chi.Router) {
		r.Post("/login", handlers.Login(store))
		r.Post("/register", handlers.Register(store))

		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// Transactions
			r.Get("/transactions", handlers.GetRecentTransactions(svc))
			r.Post("/transactions", handlers.AddTransaction(svc))

			// Categories
			r.Get("/categories", handlers.GetCategories(svc))
			r.Post("/categories", handlers.AddCategory(svc))

			// Reports
			r.Get("/reports/summary", handlers.GetFinancialSummary(svc))
			r.Get("/reports/breakdown", handlers.GetExpenseBreakdown(svc))
			r.Get("/reports/monthly", handlers.GetMonthlyData(svc))
			r.Get("/reports/trends", handlers.GetSpendingTrends(svc))
			r.Get("/reports/budget", handlers.GetBudgetComparison(svc))
		})

		// Super Admin Routes
		r.With(middleware.JWTAuthMiddleware, middleware.SuperAdminMiddleware).Group(func(r chi.Router) {
			// Allow-list
			r.Post("/admin/authorized-users", handlers.CreateAuthorizedUser(store))
			r.Get("/admin/authorized-users", handlers.GetAllAuthorizedUsers(store))
			r.Delete("/admin/authorized-users/{user_id}", handlers.DeleteAuthorizedUser(store))

			// Cache
			r.Post("/admin/cache/clear", handlers.ClearReportCache())
		})
	})

	return r
}
