package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/Thenafi/chatwithproperties/internal/upstream"
)

// ErrorResponse is the JSON body every failed API request carries.
type ErrorResponse struct {
	// Error is the machine-readable code, e.g. RATE_LIMIT_ERROR.
	Error string `json:"error"`
	// Message is the fixed human-readable text for the code.
	Message string `json:"message"`
	// Status echoes the upstream HTTP status when one was received.
	Status int `json:"status,omitempty"`
	// Details carries transport error text when present.
	Details string `json:"details,omitempty"`
}

// WriteError writes a JSON error response with the given code and message.
func WriteError(w http.ResponseWriter, statusCode int, code, message string) {
	writeJSON(w, statusCode, ErrorResponse{
		Error:   code,
		Message: message,
	})
}

// WriteUpstreamError translates an upstream client failure into the JSON error
// surface. Anything that is not an *upstream.Error is reported as a generic
// API_ERROR so no internal error text leaks to the client.
func WriteUpstreamError(w http.ResponseWriter, err error) {
	var upErr *upstream.Error
	if !errors.As(err, &upErr) {
		WriteError(w, http.StatusInternalServerError, string(upstream.KindAPI),
			"Unexpected failure while contacting the upstream API")
		return
	}

	writeJSON(w, upErr.HTTPStatus(), ErrorResponse{
		Error:   string(upErr.Kind),
		Message: upErr.Message,
		Status:  upErr.Status,
		Details: upErr.Details,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}
