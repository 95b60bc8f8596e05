package server

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Thenafi/chatwithproperties/internal/assets"
	"github.com/Thenafi/chatwithproperties/internal/auth"
	"github.com/Thenafi/chatwithproperties/internal/config"
	"github.com/Thenafi/chatwithproperties/internal/upstream"
)

// sessionCookieMaxAge bounds the cookie lifetime to one day; the token itself
// stops validating at the calendar-day boundary regardless.
const sessionCookieMaxAge = 86400

// Handler carries the dependencies of every HTTP handler: live config, the
// upstream client, and the session authenticator.
type Handler struct {
	runtime config.RuntimeConfig
	client  *upstream.Client
	session *auth.SessionAuthenticator
}

// NewHandler creates a Handler reading operator credentials live from runtime.
func NewHandler(runtime config.RuntimeConfig, client *upstream.Client) *Handler {
	return &Handler{
		runtime: runtime,
		client:  client,
		session: auth.NewSessionAuthenticator(func() auth.Credentials {
			cfg := runtime.Get()
			if cfg == nil {
				return auth.Credentials{}
			}
			return auth.Credentials{
				Username:    cfg.Auth.Username,
				Password:    cfg.Auth.Password,
				UseLocalDay: cfg.Auth.UseLocalDay,
			}
		}),
	}
}

// Session exposes the authenticator for the gate middleware.
func (h *Handler) Session() *auth.SessionAuthenticator {
	return h.session
}

// Asset returns a handler serving the named embedded asset. An unknown name
// answers 200 with a plain "File not found" body, matching the historical
// behavior the UI depends on.
func (h *Handler) Asset(name string) http.HandlerFunc {
	content, contentType, known := assets.Resolve(name)
	return func(writer http.ResponseWriter, request *http.Request) {
		if !known {
			zerolog.Ctx(request.Context()).Warn().
				Str("asset", name).
				Msg("unknown asset requested")
		}
		writer.Header().Set("Content-Type", contentType)
		if _, err := writer.Write(content); err != nil {
			zerolog.Ctx(request.Context()).Error().Err(err).Msg("failed to write asset")
		}
	}
}

// Login handles the credential form. Success sets the derived session cookie
// and redirects to the app; every failure redirects back to the login page
// with a coarse error tag in the query string.
func (h *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	cfg := h.runtime.Get()
	if cfg == nil || !cfg.Auth.HasCredentials() {
		zerolog.Ctx(request.Context()).Error().Msg("login attempted without configured credentials")
		redirectLoginError(writer, request, "config")
		return
	}

	if err := request.ParseForm(); err != nil {
		zerolog.Ctx(request.Context()).Error().Err(err).Msg("failed to parse login form")
		redirectLoginError(writer, request, "error")
		return
	}

	creds := auth.Credentials{
		Username:    cfg.Auth.Username,
		Password:    cfg.Auth.Password,
		UseLocalDay: cfg.Auth.UseLocalDay,
	}
	if !auth.CheckLogin(creds, request.PostFormValue("username"), request.PostFormValue("password")) {
		zerolog.Ctx(request.Context()).Warn().Msg("login rejected")
		redirectLoginError(writer, request, "invalid")
		return
	}

	token, err := h.session.ExpectedToken()
	if err != nil {
		zerolog.Ctx(request.Context()).Error().Err(err).Msg("failed to derive session token")
		redirectLoginError(writer, request, "config")
		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     auth.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   sessionCookieMaxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})

	zerolog.Ctx(request.Context()).Info().Msg("login succeeded")
	http.Redirect(writer, request, "/", http.StatusFound)
}

func redirectLoginError(writer http.ResponseWriter, request *http.Request, tag string) {
	http.Redirect(writer, request, "/login?error="+url.QueryEscape(tag), http.StatusFound)
}

// ListProperties proxies one page of the property list. Pagination parameters
// pass through; anything unparsable falls back to the client defaults.
func (h *Handler) ListProperties(writer http.ResponseWriter, request *http.Request) {
	page := queryInt(request, "page")
	perPage := queryInt(request, "per_page")

	body, err := h.client.ListProperties(request.Context(), page, perPage)
	if err != nil {
		WriteUpstreamError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	if _, err := writer.Write(body); err != nil {
		zerolog.Ctx(request.Context()).Error().Err(err).Msg("failed to write property list")
	}
}

// PropertyDetails proxies a single property lookup by path ID.
func (h *Handler) PropertyDetails(writer http.ResponseWriter, request *http.Request) {
	body, err := h.client.GetProperty(request.Context(), request.PathValue("id"))
	if err != nil {
		WriteUpstreamError(writer, err)
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	if _, err := writer.Write(body); err != nil {
		zerolog.Ctx(request.Context()).Error().Err(err).Msg("failed to write property details")
	}
}

// NotFound answers every unrouted path with a plain 404, before and after login.
func (h *Handler) NotFound(writer http.ResponseWriter, request *http.Request) {
	zerolog.Ctx(request.Context()).Debug().
		Str("path", request.URL.Path).
		Msg("no route matched")
	http.Error(writer, "Not Found", http.StatusNotFound)
}

// queryInt parses a query parameter as a positive int, 0 when absent or invalid.
func queryInt(request *http.Request, key string) int {
	raw := request.URL.Query().Get(key)
	if raw == "" {
		return 0
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
