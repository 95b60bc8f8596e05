// Package auth implements the session authentication for chatwithproperties.
// The single operator logs in with configured credentials and receives a
// deterministic, date-scoped token; both issuer and verifier recompute it, so
// no session state is stored anywhere.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"net/http"
	"time"
)

// SessionCookieName is the cookie carrying the derived session token.
const SessionCookieName = "session_token"

// Result contains the outcome of a session validation attempt.
type Result struct {
	// Error contains the failure reason for logging. It is never sent to the
	// client: an absent cookie and a wrong cookie must look identical outside.
	Error string
	// Valid indicates whether the session token matched.
	Valid bool
}

// Credentials holds the configured operator identity used for both login
// verification and token derivation.
type Credentials struct {
	Username    string
	Password    string
	UseLocalDay bool
}

// CredentialsFunc supplies the current operator credentials. A func rather
// than a struct so hot-reloaded config is observed per request.
type CredentialsFunc func() Credentials

// SessionAuthenticator validates the date-scoped session cookie.
// It is stateless: each request recomputes the expected token for the current
// calendar day and compares. Validity silently flips at the day boundary,
// which is the intended lightweight-session tradeoff.
type SessionAuthenticator struct {
	creds CredentialsFunc
	now   func() time.Time
}

// NewSessionAuthenticator creates a session authenticator reading credentials
// through creds on every validation.
func NewSessionAuthenticator(creds CredentialsFunc) *SessionAuthenticator {
	return &SessionAuthenticator{
		creds: creds,
		now:   time.Now,
	}
}

// WithClock overrides the time source. Used by tests to pin the calendar day.
func (a *SessionAuthenticator) WithClock(now func() time.Time) *SessionAuthenticator {
	a.now = now
	return a
}

// ExpectedToken returns the token a valid session must present right now.
// Returns an error when the operator credentials are not configured.
func (a *SessionAuthenticator) ExpectedToken() (string, error) {
	c := a.creds()
	return DeriveToken(c.Username, c.Password, CalendarDay(a.now(), c.UseLocalDay))
}

// Validate checks the session_token cookie against the recomputed token.
// Absent and mismatched cookies produce the same Result so the caller cannot
// leak session state to the client.
func (a *SessionAuthenticator) Validate(r *http.Request) Result {
	expected, err := a.ExpectedToken()
	if err != nil {
		return Result{Valid: false, Error: "operator credentials not configured"}
	}

	provided := ParseCookies(r.Header.Get("Cookie"))[SessionCookieName]
	if !constantTimeEqual(provided, expected) {
		return Result{Valid: false, Error: "missing or invalid session token"}
	}

	return Result{Valid: true, Error: ""}
}

// CheckLogin compares submitted login credentials against the configured ones.
// Both comparisons run in constant time to avoid timing leaks.
func CheckLogin(c Credentials, username, password string) bool {
	userOK := constantTimeEqual(username, c.Username)
	passOK := constantTimeEqual(password, c.Password)
	return userOK && passOK
}

// constantTimeEqual compares two strings without leaking length or content
// timing. Hashing first keeps the comparison fixed-width.
func constantTimeEqual(a, b string) bool {
	ha := sha256.Sum256([]byte(a))
	hb := sha256.Sum256([]byte(b))
	return subtle.ConstantTimeCompare(ha[:], hb[:]) == 1
}
