package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/atharvaaa699/mishika/internal/infrastructure/observability"
	apperrors "github.com/atharvaaa699/mishika/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{
		"error": message,
	})
}

// respondWithAppError maps an error onto a status code. Messages of not
// found and validation errors are shown to the caller; anything else is
// logged and replaced with fallback.
func respondWithAppError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeNotFound:
		respondWithError(w, http.StatusNotFound, appMessage(err))
	case apperrors.ErrorTypeValidation:
		respondWithError(w, http.StatusBadRequest, appMessage(err))
	default:
		observability.LoggerFromContext(r.Context()).Error().
			Err(err).
			Str("path", r.URL.Path).
			Msg(fallback)
		respondWithError(w, http.StatusInternalServerError, fallback)
	}
}

func appMessage(err error) string {
	if appErr, ok := apperrors.AsAppError(err); ok {
		return appErr.Message
	}
	return err.Error()
}
