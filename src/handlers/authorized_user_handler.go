package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"

	"findash-server/src/db"

	"github.com/go-chi/chi/v5"
)

func CreateAuthorizedUser(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			UserID int64 `json:"user_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == 0 {
			log.Printf("ERROR: Failed to decode create authorized user request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if _, err := store.GetUserByID(r.Context(), req.UserID); err != nil {
			log.Printf("ERROR: Cannot authorize unknown user %d: %v", req.UserID, err)
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}

		entry, err := store.AddAuthorizedUser(r.Context(), req.UserID)
		if err != nil {
			if strings.Contains(err.Error(), "duplicate key") {
				log.Printf("ERROR: User %d is already authorized", req.UserID)
				http.Error(w, "user already authorized", http.StatusConflict)
				return
			}
			log.Printf("ERROR: Failed to create authorized user: %v", err)
			http.Error(w, "failed to create", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Authorized user added - ID: %d", entry.UserID)
		// Every report is computed over the allow-list, so cached
		// payloads are invalid the moment it changes.
		db.ClearAllReportCaches()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(entry)
	}
}

func GetAllAuthorizedUsers(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := store.GetAllAuthorizedUsers(r.Context())
		if err != nil {
			log.Printf("ERROR: Failed to get authorized users: %v", err)
			http.Error(w, "failed to get authorized users", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(users)
	}
}

func DeleteAuthorizedUser(store db.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idStr := chi.URLParam(r, "user_id")
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			log.Printf("ERROR: Invalid authorized user id param for delete: %s", idStr)
			http.Error(w, "invalid id", http.StatusBadRequest)
			return
		}
		if err := store.DeleteAuthorizedUser(r.Context(), id); err != nil {
			log.Printf("ERROR: Failed to delete authorized user %d: %v", id, err)
			http.Error(w, "failed to delete", http.StatusInternalServerError)
			return
		}
		log.Printf("INFO: Authorized user removed - ID: %d", id)
		db.ClearAllReportCaches()
		w.WriteHeader(http.StatusNoContent)
	}
}
