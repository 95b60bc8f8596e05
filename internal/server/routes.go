package server

import (
	"net/http"

	"github.com/Thenafi/chatwithproperties/internal/assets"
	"github.com/Thenafi/chatwithproperties/internal/config"
	"github.com/Thenafi/chatwithproperties/internal/upstream"
)

// SetupRoutes builds the route table and wires the middleware chain.
//
// Route map:
//
//	GET  /                      home page (gated)
//	GET  /index.html            home page (gated)
//	GET  /app.js                app script (gated)
//	GET  /login                 login page (public)
//	POST /login                 credential check (public, optionally throttled)
//	GET  /styles.css            stylesheet (public, shared with the login page)
//	GET  /api/properties        property list proxy (gated)
//	GET  /api/property/{id}     property details proxy (gated)
//	*                           404 regardless of session state
func SetupRoutes(runtime config.RuntimeConfig, client *upstream.Client) http.Handler {
	h := NewHandler(runtime, client)
	gate := GateMiddleware(h.Session())
	throttle := LoginThrottleMiddleware(runtime)

	mux := http.NewServeMux()

	// Public surface. The stylesheet stays open so the login page renders.
	mux.Handle("GET /login", h.Asset(assets.LoginPage))
	mux.Handle("POST /login", throttle(http.HandlerFunc(h.Login)))
	mux.Handle("GET /styles.css", h.Asset(assets.Stylesheet))

	// Gated surface.
	mux.Handle("GET /{$}", gate(h.Asset(assets.HomePage)))
	mux.Handle("GET /index.html", gate(h.Asset(assets.HomePage)))
	mux.Handle("GET /app.js", gate(h.Asset(assets.Script)))
	mux.Handle("GET /api/properties", gate(http.HandlerFunc(h.ListProperties)))
	mux.Handle("GET /api/property/{id}", gate(http.HandlerFunc(h.PropertyDetails)))

	// Catch-all. Specific patterns above win precedence, so only unrouted
	// paths land here.
	mux.HandleFunc("/", h.NotFound)

	var handler http.Handler = mux
	handler = LoggingMiddleware()(handler)
	handler = RequestIDMiddleware()(handler)

	return handler
}
