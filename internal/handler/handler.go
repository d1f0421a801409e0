package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"audiophile/internal/middleware"
	"audiophile/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// The status line is already written; nothing useful to send.
		return
	}
}

// writeError writes a standardised error response.
func writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, logger zerolog.Logger) {
	correlationID := middleware.CorrelationID(r.Context())

	logger.Error().
		Str("code", code).
		Str("error", message).
		Int("status", status).
		Str("correlation_id", correlationID).
		Msg("handler error")

	writeJSON(w, status, model.ErrorResponse{
		Error:         code,
		Message:       message,
		CorrelationID: correlationID,
	})
}

// writeDomainError maps a service error to an HTTP response. Domain errors
// keep their code and message; anything else is reported as an internal
// error without leaking details.
func writeDomainError(w http.ResponseWriter, r *http.Request, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, r, statusForCode(domainErr.Code), domainErr.Code, domainErr.Message, logger)
		return
	}

	writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "the operation could not be completed", logger)
}

// statusForCode maps domain error codes to HTTP status codes.
func statusForCode(code string) int {
	switch code {
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound:
		return http.StatusNotFound
	case model.ErrCodeInvalidJSON,
		model.ErrCodeInvalidID,
		model.ErrCodeMissingField,
		model.ErrCodeEmptyOrder,
		model.ErrCodeInvalidQuantity,
		model.ErrCodeInvalidPrice:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
