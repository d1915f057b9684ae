package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"findash-server/src/models"
	"findash-server/src/service"
)

func GetCategories(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		categories, ok := svc.Categories(r.Context(), userID, r.URL.Query().Get("type"))
		writeReport(w, categories, ok)
	}
}

func AddCategory(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := r.Context().Value("user_id").(int64)
		var req models.AddCategoryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode add category request body for user %d: %v", userID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		result := svc.AddCategory(r.Context(), userID, req)
		w.Header().Set("Content-Type", "application/json")
		if !result.Success {
			w.WriteHeader(http.StatusBadRequest)
		} else {
			w.WriteHeader(http.StatusCreated)
		}
		json.NewEncoder(w).Encode(result)
	}
}
