package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"findash-server/src/db"
)

func ClearReportCache() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		db.ClearAllReportCaches()
		log.Printf("INFO: Report caches cleared by admin")
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "report caches cleared"})
	}
}
