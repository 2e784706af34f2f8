package ports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/Amund211/gridline/internal/domain"
	"github.com/Amund211/gridline/internal/reporting"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, statusCode int, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		reporting.Report(ctx, fmt.Errorf("failed to marshal response: %w", err))
		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(data)
}

// writeUsecaseError maps domain sentinels onto HTTP statuses. Anything
// unmapped is a plain 500; usecases and repositories report their own errors.
func writeUsecaseError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrPlaylistNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrJobNotInPlaylist):
		writeJSONError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrJobAlreadyExists):
		writeJSONError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrMissingJobURL),
		errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrEmptyPlaylistName),
		errors.Is(err, domain.ErrIndexOutOfRange):
		writeJSONError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrTemporarilyUnavailable):
		writeJSONError(w, "Temporarily unavailable", http.StatusServiceUnavailable)
	default:
		writeJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
