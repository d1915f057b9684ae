package main

import (
	"context"
	"log"
	"net/http"

	"findash-server/src/api"
	"findash-server/src/config"
	"findash-server/src/db"
	sqldb "findash-server/src/db/sql"
	"findash-server/src/handlers"
	"findash-server/src/service"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	// Apply schema migrations
	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("DB migration failed: %v", err)
	}

	db.InitCache()

	store := sqldb.New(pool)
	svc := service.New(store, cfg.Budgets, cfg.IncludeUnbudgeted)

	pages, err := handlers.NewPages(svc, store)
	if err != nil {
		log.Fatalf("Template parsing failed: %v", err)
	}

	// Router
	router := api.NewRouter(store, svc, pages, cfg.AllowedOrigins, cfg.DemoMode)

	log.Println("Dashboard server running on port", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		log.Fatal(err)
	}
}
