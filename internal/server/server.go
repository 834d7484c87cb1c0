package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/basecamp/cookie-composer/internal/metrics"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 15 * time.Second
)

type Server struct {
	config          *Config
	defaults        CookieDefaults
	httpListener    net.Listener
	httpServer      *http.Server
	metricsListener net.Listener
	metricsServer   *http.Server
}

func NewServer(config *Config, defaults CookieDefaults) *Server {
	return &Server{
		config:   config,
		defaults: defaults,
	}
}

func (s *Server) Start() error {
	err := s.startHTTPServer()
	if err != nil {
		return err
	}

	err = s.startMetricsServer()
	if err != nil {
		return err
	}

	slog.Info("Server started", "http", s.HttpPort())
	return nil
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.httpServer.Shutdown(ctx)
	if s.metricsServer != nil {
		s.metricsServer.Shutdown(ctx)
	}

	slog.Info("Server stopped")
}

func (s *Server) HttpPort() int {
	return s.httpListener.Addr().(*net.TCPAddr).Port
}

// Private

func (s *Server) startHTTPServer() error {
	l, err := net.Listen("tcp", s.config.ListenAddress())
	if err != nil {
		return err
	}

	s.httpListener = l
	s.httpServer = &http.Server{
		Handler:           s.buildHandler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go s.httpServer.Serve(s.httpListener)

	return nil
}

func (s *Server) startMetricsServer() error {
	if s.config.MetricsPort == 0 {
		return nil
	}

	addr := fmt.Sprintf("%s:%d", s.config.Bind, s.config.MetricsPort)
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}

	s.metricsListener = l
	s.metricsServer = &http.Server{
		Handler:           metrics.Enable(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go s.metricsServer.Serve(s.metricsListener)

	slog.Info("Metrics enabled", "port", s.metricsListener.Addr().(*net.TCPAddr).Port)
	return nil
}

func (s *Server) buildHandler() http.Handler {
	return BuildHandler(slog.Default(), s.defaults)
}

func BuildHandler(logger *slog.Logger, defaults CookieDefaults) http.Handler {
	var handler http.Handler

	handler = NewPages(defaults)
	handler = WithErrorPageMiddleware(handler)
	handler = WithVisitMiddleware(defaults, handler)
	handler = WithCookieContextMiddleware(handler)
	handler = WithLoggingMiddleware(logger, handler)
	handler = WithRequestIDMiddleware(handler)

	return handler
}
