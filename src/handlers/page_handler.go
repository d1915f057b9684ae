package handlers

import (
	"html/template"
	"log"
	"net/http"
	"time"

	"findash-server/src/db"
	"findash-server/src/middleware"
	"findash-server/src/models"
	"findash-server/src/service"
	"findash-server/src/web"

	"golang.org/x/sync/errgroup"
)

// Pages serves the server-rendered surfaces: the dashboard itself plus
// the login and unauthorized screens. Unauthenticated visitors are
// redirected to /login rather than handed a 401.
type Pages struct {
	svc       *service.Service
	store     db.Store
	templates *template.Template
}

func NewPages(svc *service.Service, store db.Store) (*Pages, error) {
	templates, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Pages{svc: svc, store: store, templates: templates}, nil
}

type dashboardData struct {
	Username    string
	Summary     models.FinancialSummary
	Recent      []models.Transaction
	Breakdown   []models.CategoryBucket
	Budget      []models.BudgetRow
	Unavailable bool
}

func (p *Pages) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims, err := middleware.ParseTokenFromRequest(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	userIDClaim, ok := claims["user_id"].(float64)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	userID := int64(userIDClaim)
	username, _ := claims["username"].(string)

	if !p.svc.IsAuthorized(r.Context(), userID) {
		p.render(w, "unauthorized", nil)
		return
	}

	now := time.Now()
	data := dashboardData{Username: username}

	// The report fetches are independent; run them together. Each one
	// already degrades to its zero view on store failure, so the group
	// never returns an error.
	var summaryOK, recentOK, breakdownOK, budgetOK bool
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		data.Summary, summaryOK = p.svc.FinancialSummary(ctx, userID)
		return nil
	})
	g.Go(func() error {
		data.Recent, recentOK = p.svc.RecentTransactions(ctx, userID)
		return nil
	})
	g.Go(func() error {
		data.Breakdown, breakdownOK = p.svc.ExpenseBreakdown(ctx, userID)
		return nil
	})
	g.Go(func() error {
		data.Budget, budgetOK = p.svc.BudgetComparison(ctx, userID, int(now.Month()), now.Year())
		return nil
	})
	_ = g.Wait()
	data.Unavailable = !(summaryOK && recentOK && breakdownOK && budgetOK)

	p.render(w, "dashboard", data)
}

func (p *Pages) LoginPage(w http.ResponseWriter, r *http.Request) {
	if _, err := middleware.ParseTokenFromRequest(r); err == nil {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	p.render(w, "login", struct{ Error bool }{Error: r.URL.Query().Get("error") != ""})
}

func (p *Pages) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/login?error=1", http.StatusSeeOther)
		return
	}

	user, err := authenticate(r.Context(), p.store, r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		log.Printf("ERROR: Failed login attempt for %s from IP %s: %v", r.FormValue("username"), r.RemoteAddr, err)
		http.Redirect(w, r, "/login?error=1", http.StatusSeeOther)
		return
	}

	tokenString, err := issueToken(user)
	if err != nil {
		log.Printf("ERROR: Failed to generate JWT token for user %s: %v", user.Username, err)
		http.Redirect(w, r, "/login?error=1", http.StatusSeeOther)
		return
	}

	log.Printf("INFO: Successful login - User: %s, ID: %d", user.Username, user.ID)
	setSessionCookie(w, tokenString)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (p *Pages) Logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookie(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (p *Pages) render(w http.ResponseWriter, name string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := p.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("ERROR: Failed to render %s template: %v", name, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
