package auth

import (
	"encoding/base64"
	"errors"
	"strings"
	"time"
)

// DayFormat is the calendar-day layout used for token derivation.
const DayFormat = "2006-01-02"

// ErrCredentialsUnset is returned when token derivation is attempted without
// both configured secrets. Callers must treat this as a configuration error
// and never authenticate on it.
var ErrCredentialsUnset = errors.New("auth: operator credentials not configured")

// DeriveToken produces the deterministic, date-scoped session credential.
// The token is the standard base64 encoding of "{username}:{calendarDay}"
// with every non-alphanumeric rune stripped, which keeps it cookie-safe.
// The filtering makes the encoding lossy; the token only needs to be stable
// for a single configured identity, not invertible.
//
// Recomputing with the same inputs on the same calendar day always yields the
// same value, and the value changes once per day. That gives an implicit
// 24-hour-ish expiry with no stored state.
func DeriveToken(username, sharedSecret, calendarDay string) (string, error) {
	if username == "" || sharedSecret == "" {
		return "", ErrCredentialsUnset
	}

	encoded := base64.StdEncoding.EncodeToString([]byte(username + ":" + calendarDay))

	var b strings.Builder
	b.Grow(len(encoded))
	for _, r := range encoded {
		if isAlphanumeric(r) {
			b.WriteRune(r)
		}
	}

	return b.String(), nil
}

// CalendarDay formats t's calendar day. The day boundary is UTC unless the
// deployment opted into the host-local clock.
func CalendarDay(t time.Time, local bool) string {
	if !local {
		t = t.UTC()
	}
	return t.Format(DayFormat)
}

func isAlphanumeric(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
