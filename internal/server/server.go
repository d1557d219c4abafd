package server

import (
	"context"
	"net/http"
	"strings"
	"time"

	"rolsa/internal/config"
)

// Server wraps an *http.Server to provide start/shutdown lifecycle.
type Server struct {
	httpServer *http.Server
}

// Fallbacks for zero values in config.HTTPConfig.
const (
	maxHeaderBytes    = 1 << 20 // 1 MB
	readHeaderTimeout = 10 * time.Second
	writeTimeout      = 15 * time.Second
	idleTimeout       = 60 * time.Second
)

// newHTTPServer builds a configured *http.Server for the given address and handler.
func newHTTPServer(addr string, cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		MaxHeaderBytes:    maxHeaderBytes,
		ReadHeaderTimeout: orDefault(cfg.ReadHeaderTimeout, readHeaderTimeout),
		WriteTimeout:      orDefault(cfg.WriteTimeout, writeTimeout),
		IdleTimeout:       orDefault(cfg.IdleTimeout, idleTimeout),
	}
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// normalizeAddr ensures the provided port is a valid address (accepts "8080" or ":8080").
func normalizeAddr(port string) string {
	if port == "" {
		return ""
	}
	if strings.Contains(port, ":") {
		return port
	}
	return ":" + port
}

// New builds the server for cfg. Build it before starting Run in a goroutine
// so that Shutdown always sees it.
func New(cfg config.HTTPConfig, handler http.Handler) *Server {
	return &Server{httpServer: newHTTPServer(normalizeAddr(cfg.Port), cfg, handler)}
}

// Run listens and blocks until the server stops.
// http.ErrServerClosed is returned after Shutdown, even one that came first.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, allowing in-flight requests to complete.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
