package server

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/Thenafi/chatwithproperties/internal/auth"
	"github.com/Thenafi/chatwithproperties/internal/config"
)

// GateMiddleware creates middleware that requires a valid session cookie.
// Every failure, whether the cookie is absent, stale, or forged, answers with
// the same redirect to /login; the distinction exists only in the debug log.
func GateMiddleware(session *auth.SessionAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			result := session.Validate(request)
			if !result.Valid {
				zerolog.Ctx(request.Context()).Debug().
					Str("path", request.URL.Path).
					Str("error", result.Error).
					Msg("session rejected")
				http.Redirect(writer, request, "/login", http.StatusFound)
				return
			}

			zerolog.Ctx(request.Context()).Debug().Msg("session accepted")
			next.ServeHTTP(writer, request)
		})
	}
}

// loginLimiterStore caches a rate.Limiter keyed by the configured rate so a
// hot-reloaded auth.login_rate_per_min takes effect without dropping buckets
// when the value is unchanged.
type loginLimiterStore struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	perMin  int
}

func (s *loginLimiterStore) get(perMin int) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.limiter == nil || s.perMin != perMin {
		s.limiter = rate.NewLimiter(rate.Limit(perMin)/60, perMin)
		s.perMin = perMin
	}
	return s.limiter
}

// LoginThrottleMiddleware creates middleware that bounds login attempts per
// minute. Disabled (pass-through) when auth.login_rate_per_min is unset.
func LoginThrottleMiddleware(runtime config.RuntimeConfig) func(http.Handler) http.Handler {
	store := &loginLimiterStore{}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			cfg := runtime.Get()
			if cfg == nil {
				next.ServeHTTP(writer, request)
				return
			}

			perMin, enabled := cfg.Auth.GetLoginRateOption().Get()
			if !enabled {
				next.ServeHTTP(writer, request)
				return
			}

			if !store.get(perMin).Allow() {
				zerolog.Ctx(request.Context()).Warn().
					Int("per_min", perMin).
					Msg("login attempt throttled")
				http.Error(writer, "Too many login attempts", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequestIDMiddleware adds X-Request-ID header and logger with request ID to context.
func RequestIDMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requestID := request.Header.Get("X-Request-ID")
			ctx := AddRequestID(request.Context(), requestID)

			if requestID == "" {
				requestID = GetRequestID(ctx)
			}

			writer.Header().Set("X-Request-ID", requestID)

			request = request.WithContext(ctx)

			next.ServeHTTP(writer, request)
		})
	}
}

// LoggingMiddleware logs each request with method, path, status, and duration.
func LoggingMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: writer,
				statusCode:     http.StatusOK,
			}

			requestID := GetRequestID(request.Context())
			shortID := requestID
			if len(shortID) > 8 {
				shortID = shortID[:8]
			}

			logger := withRequestFields(request, shortID).Logger()
			logger.Debug().Msgf("%s %s", request.Method, request.URL.Path)

			next.ServeHTTP(wrapped, request)

			logRequestCompletion(request, wrapped, time.Since(start), shortID)
		})
	}
}

func withRequestFields(r *http.Request, shortID string) zerolog.Context {
	return zerolog.Ctx(r.Context()).With().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Str("req_id", shortID)
}

func logRequestCompletion(request *http.Request, wrapped *responseWriter, duration time.Duration, shortID string) {
	durationStr := formatDuration(duration)
	completionMsg := statusSymbol(wrapped.statusCode) + " " +
		http.StatusText(wrapped.statusCode) + " (" + durationStr + ")"

	logger := withRequestFields(request, shortID).
		Int("status", wrapped.statusCode).
		Str("duration", durationStr).
		Logger()

	switch {
	case wrapped.statusCode >= 500:
		logger.Error().Msg(completionMsg)
	case wrapped.statusCode >= 400:
		logger.Warn().Msg(completionMsg)
	default:
		logger.Info().Msg(completionMsg)
	}
}

func statusSymbol(statusCode int) string {
	switch {
	case statusCode >= 500:
		return "✗"
	case statusCode >= 400:
		return "⚠"
	default:
		return "✓"
	}
}

// formatDuration formats duration in a human-readable form with microsecond precision.
// Uses dynamic units so very fast requests show in µs while longer ones show in ms/s.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	duration = duration.Round(time.Microsecond)
	switch {
	case duration < time.Millisecond:
		return fmt.Sprintf("%dµs", duration.Microseconds())
	case duration < time.Second:
		return fmt.Sprintf("%.2fms", float64(duration)/float64(time.Millisecond))
	case duration < time.Minute:
		return fmt.Sprintf("%.2fs", duration.Seconds())
	default:
		return duration.Truncate(time.Second).String()
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
