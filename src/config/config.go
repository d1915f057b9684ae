package config

import (
	"encoding/json"
	"log"
	"os"
	"strings"

	"findash-server/src/reports"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	DatabaseURL    string
	JWTSecret      string
	DemoMode       bool
	AllowedOrigins []string

	// Budget comparison knobs. Budgets overrides the built-in budget
	// set; IncludeUnbudgeted appends budget-zero rows for categories
	// with spending outside the set instead of dropping them.
	Budgets           []reports.Budget
	IncludeUnbudgeted bool
}

func Load() Config {
	// Load .env file if present
	_ = godotenv.Load()

	cfg := Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       getEnv("DATABASE_URL", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		DemoMode:          getEnv("DEMO_MODE", "") == "true",
		IncludeUnbudgeted: getEnv("BUDGET_INCLUDE_UNBUDGETED", "") == "true",
	}

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	if origins := getEnv("ALLOWED_ORIGINS", ""); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, strings.TrimSpace(origin))
		}
	}

	if budgets := getEnv("BUDGETS", ""); budgets != "" {
		if err := json.Unmarshal([]byte(budgets), &cfg.Budgets); err != nil {
			log.Fatalf("BUDGETS is not valid JSON: %v", err)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
