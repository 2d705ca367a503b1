// Copyright (c) 2026 vsalvino All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package webserver

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/vsalvino/agent/src/logger"
	"github.com/vsalvino/agent/src/router"
)

// Server is the agent's HTTP(S) server. It owns the listener lifecycle and
// delegates every request to the transport-agnostic router.
//
// Typical usage is New followed by Run with a signal-derived context; the
// finer-grained Start/Serve/Shutdown methods exist so tests can bind an
// ephemeral port and drive the lifecycle directly.
type Server struct {
	cfg    *Config
	router *router.Router
	log    logger.Logger

	http     *http.Server
	listener net.Listener
	tls      bool
}

// New creates a Server for the given configuration and router.
// A nil logger falls back to the CLI logger.
func New(cfg *Config, rt *router.Router, log logger.Logger) *Server {
	if log == nil {
		log = logger.NewCLILogger()
	}
	return &Server{
		cfg:    cfg,
		router: rt,
		log:    log,
	}
}

// Start validates the TLS configuration and binds the TCP listener,
// upgrading it to TLS when a certificate/key pair is configured.
//
// Configuration errors (half a TLS pair, unreadable files) are returned
// before any socket is opened. Start does not accept connections; call
// Serve or Run for that.
func (s *Server) Start() error {
	tlsCfg, err := s.cfg.tlsConfig()
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(s.cfg.Server.Host, strconv.Itoa(s.cfg.Server.Port))
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", addr, err)
	}

	if tlsCfg != nil {
		ln = tls.NewListener(ln, tlsCfg)
		s.tls = true
	}
	s.listener = ln

	s.http = &http.Server{
		Handler:      s.handler(),
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(s.cfg.Server.IdleTimeout) * time.Second,
	}

	return nil
}

// Addr reports the bound listener address, or nil before Start succeeds.
// With an ephemeral port configuration this is how callers learn the
// actual port.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// URL reports the base URL of the bound listener, e.g. "http://127.0.0.1:8000".
func (s *Server) URL() string {
	addr := s.Addr()
	if addr == nil {
		return ""
	}
	scheme := "http"
	if s.tls {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, addr)
}

// Serve accepts connections on the bound listener until Shutdown or Close.
// The http.ErrServerClosed sentinel from a graceful shutdown is translated
// to nil since it is not a failure.
func (s *Server) Serve() error {
	if err := s.http.Serve(s.listener); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections and lets in-flight response
// writes complete, bounded by ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Run starts the server and blocks until either the server fails or ctx is
// cancelled (typically by an interrupt signal). On cancellation it drains
// in-flight requests within the configured shutdown budget, prints the
// farewell line, and returns nil: an interrupt is a normal shutdown request,
// not an error.
//
// Callers that already invoked Start keep their bound listener; Run will
// not rebind.
func (s *Server) Run(ctx context.Context) error {
	if s.listener == nil {
		if err := s.Start(); err != nil {
			return err
		}
	}

	s.log.Printf("Running web server on %s", s.URL())

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.Serve()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			time.Duration(s.cfg.Server.ShutdownTimeout)*time.Second,
		)
		defer cancel()

		if err := s.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown: %w", err)
		}
		<-errChan

		s.log.Println("Bye.")
		return nil
	}
}

// handler adapts incoming HTTP requests to the transport-agnostic router.
func (s *Server) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRequest)
	return mux
}

// handleRequest rejects non-GET methods with 405, flattens the query
// string, and writes the routed response.
func (s *Server) handleRequest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeResponse(w, router.ErrorResponse(
			http.StatusMethodNotAllowed,
			fmt.Sprintf("Method %s not allowed", r.Method),
		))
		return
	}

	// Flatten multi-valued query params; only the first value is routed.
	query := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			query[key] = values[0]
		}
	}

	s.writeResponse(w, s.router.Route(r.URL.Path, query))
}

// writeResponse writes status line, content-type header, and body.
func (s *Server) writeResponse(w http.ResponseWriter, resp router.Response) {
	w.Header().Set("Content-Type", resp.ContentType)
	w.WriteHeader(resp.StatusCode)
	if _, err := io.WriteString(w, resp.Body); err != nil {
		s.log.Printf("failed to write response: %v", err)
	}
}
