package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"transportpro/internal/middleware"
	"transportpro/internal/model"
	"transportpro/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// currentUser resolves the authenticated caller to a fresh user record.
// Token claims are never trusted for subscription state; the record is
// re-fetched on every protected request. Returns false after writing the
// error response when the caller cannot be resolved.
func currentUser(w http.ResponseWriter, r *http.Request, auth service.AuthService) (*model.User, bool) {
	userID, ok := middleware.UserID(r)
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return nil, false
	}
	user, err := auth.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusUnauthorized)
			return nil, false
		}
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return nil, false
	}
	return user, true
}
