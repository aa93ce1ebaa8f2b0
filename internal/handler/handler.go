package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"freshmart/internal/model"

	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but don't expose it to the client
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: message})
}

// writeDomainError maps a domain error to its HTTP status and writes it with
// both the stable code and the human-readable message. Unknown errors become
// an opaque 500.
func writeDomainError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if !errors.As(err, &domainErr) {
		logger.Error().Err(err).Msg("handler error")
		writeJSON(w, http.StatusInternalServerError, model.ErrorResponse{
			Error:   model.ErrCodeInternalError,
			Message: "internal server error",
		})
		return
	}

	status := statusForCode(domainErr.Code)
	logger.Warn().Str("code", domainErr.Code).Int("status", status).Msg("request rejected")
	writeJSON(w, status, model.ErrorResponse{
		Error:   domainErr.Code,
		Message: domainErr.Message,
	})
}

func statusForCode(code string) int {
	switch code {
	case model.ErrCodeProductNotFound, model.ErrCodeOrderNotFound, model.ErrCodeAddressNotFound:
		return http.StatusNotFound
	case model.ErrCodeOutOfStock, model.ErrCodeInvalidTransition:
		return http.StatusConflict
	case model.ErrCodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}
