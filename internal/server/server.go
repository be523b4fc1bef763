// Package server exposes the conops services over HTTP for the timeline
// frontend and other collaborators. The surface is deliberately small:
// project snapshots, exports with artifact download, and the placement
// engine (validate, windows, snap) for callers that keep documents on
// their side of the wire.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/shamsu/conops/internal/service"
)

// Config wires a Server.
type Config struct {
	// Addr is the TCP listen address, e.g. ":8340".
	Addr string

	Validation service.ValidationService
	Projects   service.ProjectService
	Exporter   service.ExportService

	// ExportsDir is where the exporter writes artifacts; /download
	// serves from here.
	ExportsDir string

	// Logger receives request and lifecycle logs. Defaults to
	// slog.Default.
	Logger *slog.Logger

	// ShutdownTimeout bounds the graceful-shutdown drain. Defaults to
	// 10 seconds.
	ShutdownTimeout time.Duration
}

// Server owns the HTTP lifecycle: listener binding, request routing, and
// graceful shutdown. Serve blocks until its context is cancelled and
// in-flight requests drain.
type Server struct {
	addr            string
	validation      service.ValidationService
	projects        service.ProjectService
	exporter        service.ExportService
	exportsDir      string
	logger          *slog.Logger
	shutdownTimeout time.Duration

	// ready closes once the listener is bound; resolvedAddr is valid
	// after that. Tests listen on port 0 and read the port back.
	ready        chan struct{}
	resolvedAddr net.Addr
}

func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.ShutdownTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Server{
		addr:            cfg.Addr,
		validation:      cfg.Validation,
		projects:        cfg.Projects,
		exporter:        cfg.Exporter,
		exportsDir:      cfg.ExportsDir,
		logger:          logger,
		shutdownTimeout: timeout,
		ready:           make(chan struct{}),
	}
}

// Ready is closed once the server is accepting connections.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the resolved listen address; valid only after Ready.
func (s *Server) Addr() net.Addr {
	return s.resolvedAddr
}

// Handler returns the full route table with CORS and request logging
// applied. Exposed separately so tests can drive it through httptest.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /projects", s.handleSaveProject)
	mux.HandleFunc("GET /projects", s.handleListProjects)
	mux.HandleFunc("GET /projects/{id}", s.handleGetProject)
	mux.HandleFunc("POST /export", s.handleExport)
	mux.HandleFunc("GET /download/{name}", s.handleDownload)
	mux.HandleFunc("POST /validate", s.handleValidate)
	mux.HandleFunc("POST /windows", s.handleWindows)
	mux.HandleFunc("POST /snap", s.handleSnap)
	return permissiveCORS(s.logRequests(mux))
}

// Serve accepts connections until ctx is cancelled, then drains in-flight
// requests for up to the shutdown timeout.
func (s *Server) Serve(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.addr, err)
	}
	s.resolvedAddr = listener.Addr()
	close(s.ready)

	server := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	s.logger.Info("conops api listening", "address", s.resolvedAddr.String())

	serveDone := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveDone <- err
		}
		close(serveDone)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("conops api shutting down")
	case err := <-serveDone:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	s.logger.Info("conops api stopped")
	return nil
}
