package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"unicode"

	"github.com/inkhouse/publishing-backend/internal/domain"
)

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error onto a status code and JSON body.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var (
		ve *domain.ValidationError
		nf *domain.NotFoundError
	)

	switch {
	case errors.As(err, &ve) && len(ve.Errors) > 0:
		first := ve.Errors[0]
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:   first.Field + ": " + first.Message,
			Details: ve.Errors,
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, "invalid input")
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, capitalize(nf.Entity)+" not found")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, domain.ErrNotConfigured):
		writeError(w, http.StatusNotImplemented, err.Error())
	default:
		log.ErrorContext(r.Context(), "request failed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error:   "Server Error",
			Details: err.Error(),
		})
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// emptyIfNil keeps list responses as [] rather than null.
func emptyIfNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

// trimmedQuery reads a query parameter with surrounding space removed.
func trimmedQuery(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}
