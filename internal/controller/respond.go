// internal/controller/respond.go
package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	appErrors "github.com/unclebandit/campaigntrack/internal/errors"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps the error taxonomy to HTTP responses. Every
// failure surfaces as a JSON {"error": ...} body; anything outside the
// taxonomy is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	var notFound *appErrors.ErrCampaignNotFound
	if errors.As(err, &notFound) {
		writeError(w, http.StatusNotFound, "Campaign not found")
		return
	}

	var validation *appErrors.ErrValidation
	if errors.As(err, &validation) {
		writeError(w, http.StatusBadRequest, validation.Msg)
		return
	}

	var emailExists *appErrors.ErrEmailExists
	if errors.As(err, &emailExists) {
		writeError(w, http.StatusBadRequest, "Email already exists")
		return
	}

	var invalidCreds *appErrors.ErrInvalidCredentials
	if errors.As(err, &invalidCreds) {
		writeError(w, http.StatusBadRequest, "Invalid email or password")
		return
	}

	writeError(w, http.StatusInternalServerError, "Internal server error")
}
