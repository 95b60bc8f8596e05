// Package server implements the HTTP surface of chatwithproperties: the
// route table, the session gate, the login flow, and the upstream API proxy
// handlers.
package server

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// Server wraps http.Server with chatwithproperties configuration.
type Server struct {
	httpServer *http.Server
	addr       string
}

// NewServer creates a new Server with conservative timeouts.
// Timeout rationale:
//   - ReadTimeout: 10s - protect against slowloris attacks
//   - WriteTimeout: requestTimeout, or 60s when zero - bounded by the single
//     upstream call per request
//   - IdleTimeout: 120s - reasonable keep-alive
//
// If enableHTTP2 is true, enables HTTP/2 cleartext (h2c) support for non-TLS
// connections, useful behind an edge terminator that speaks h2c to origins.
func NewServer(addr string, handler http.Handler, enableHTTP2 bool, requestTimeout time.Duration) *Server {
	finalHandler := handler
	if enableHTTP2 {
		h2s := &http2.Server{}
		finalHandler = h2c.NewHandler(handler, h2s)
	}

	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}

	return &Server{
		addr: addr,
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      finalHandler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: requestTimeout,
			IdleTimeout:  120 * time.Second,
		},
	}
}

// ListenAndServe starts the server (blocks).
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
