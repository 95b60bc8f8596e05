// Package upstream implements the client for the property-management API.
package upstream

import (
	"fmt"
	"net/http"
)

// Kind identifies why an upstream call did not succeed. The values double as
// the machine-readable `error` field of JSON error bodies.
type Kind string

// Proxy error kinds.
const (
	KindTokenMissing   Kind = "API_TOKEN_MISSING"
	KindAuthentication Kind = "AUTHENTICATION_ERROR"
	KindAuthorization  Kind = "AUTHORIZATION_ERROR"
	KindRateLimit      Kind = "RATE_LIMIT_ERROR"
	KindNotFound       Kind = "NOT_FOUND_ERROR"
	KindAPI            Kind = "API_ERROR"
	KindNetwork        Kind = "NETWORK_ERROR"
)

// kindMessages are the fixed human messages per kind.
var kindMessages = map[Kind]string{
	KindTokenMissing:   "Upstream API token is not configured",
	KindAuthentication: "Upstream API rejected the configured token",
	KindAuthorization:  "Upstream API denied access to this resource",
	KindRateLimit:      "Upstream API rate limit exceeded",
	KindNotFound:       "Property not found",
	KindAPI:            "Upstream API returned an error",
	KindNetwork:        "Failed to reach the upstream API",
}

// Error is the structured failure returned by every client operation.
type Error struct {
	// Kind tags the failure class.
	Kind Kind
	// Message is the fixed human-readable text for the kind.
	Message string
	// Status is the upstream HTTP status code, 0 when no response was received.
	Status int
	// Details carries the underlying transport error text, when present.
	// Callers must not assume it is set.
	Details string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("upstream: %s (status %d)", e.Message, e.Status)
	}
	if e.Details != "" {
		return fmt.Sprintf("upstream: %s: %s", e.Message, e.Details)
	}
	return "upstream: " + e.Message
}

// HTTPStatus returns the status code the proxy should answer the client with.
// Mapped upstream errors keep the upstream status; a missing token is a local
// configuration fault (500) and an unreachable upstream is a bad gateway (502).
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindTokenMissing:
		return http.StatusInternalServerError
	case KindNetwork:
		return http.StatusBadGateway
	default:
		if e.Status != 0 {
			return e.Status
		}
		return http.StatusInternalServerError
	}
}

// newError builds an Error with the fixed message for kind.
func newError(kind Kind, status int, details string) *Error {
	return &Error{
		Kind:    kind,
		Message: kindMessages[kind],
		Status:  status,
		Details: details,
	}
}

// mapStatus translates a non-2xx upstream status into an Error.
// 404 only maps to NotFound on the details endpoint; a 404 from the list
// endpoint is an upstream malfunction, not a missing record.
func mapStatus(status int, detailsEndpoint bool) *Error {
	switch {
	case status == http.StatusUnauthorized:
		return newError(KindAuthentication, status, "")
	case status == http.StatusForbidden:
		return newError(KindAuthorization, status, "")
	case status == http.StatusTooManyRequests:
		return newError(KindRateLimit, status, "")
	case status == http.StatusNotFound && detailsEndpoint:
		return newError(KindNotFound, status, "")
	default:
		return newError(KindAPI, status, "")
	}
}
