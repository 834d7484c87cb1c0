package server

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/basecamp/cookie-composer/internal/metrics"
)

type contextKey string

type LoggingMiddleware struct {
	logger *slog.Logger
	next   http.Handler
}

func WithLoggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return &LoggingMiddleware{
		logger: logger,
		next:   next,
	}
}

func (h *LoggingMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writer := newLoggerResponseWriter(w)

	started := time.Now()
	h.next.ServeHTTP(writer, r)
	elapsed := time.Since(started)
	writer.captureHeaders()

	metrics.Tracker.TrackRequest(r.Method, writer.statusCode, elapsed)

	userAgent := r.Header.Get("User-Agent")
	respContent := writer.Header().Get("Content-Type")
	remoteAddr := r.Header.Get("X-Forwarded-For")
	requestID := r.Header.Get("X-Request-ID")
	if remoteAddr == "" {
		remoteAddr = r.RemoteAddr
	}

	h.logger.LogAttrs(r.Context(), slog.LevelInfo, "Request",
		slog.String("host", r.Host),
		slog.String("path", r.URL.Path),
		slog.String("request_id", requestID),
		slog.Int("status", writer.statusCode),
		slog.Int64("duration", elapsed.Nanoseconds()),
		slog.String("method", r.Method),
		slog.Int("req_cookies", len(r.Cookies())),
		slog.Int("resp_set_cookies", writer.setCookies),
		slog.Int64("resp_content_length", writer.bytesWritten),
		slog.String("resp_content_type", respContent),
		slog.String("remote_addr", remoteAddr),
		slog.String("user_agent", userAgent),
		slog.String("query", r.URL.RawQuery),
	)
}

type loggerResponseWriter struct {
	http.ResponseWriter
	statusCode    int
	bytesWritten  int64
	setCookies    int
	headerWritten bool
}

func newLoggerResponseWriter(w http.ResponseWriter) *loggerResponseWriter {
	return &loggerResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}
}

// WriteHeader is used to capture the status code and the cookies sent
func (r *loggerResponseWriter) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.captureHeaders()
	r.ResponseWriter.WriteHeader(statusCode)
}

// Write is used to capture the amount of data written
func (r *loggerResponseWriter) Write(b []byte) (int, error) {
	r.captureHeaders()
	bytesWritten, err := r.ResponseWriter.Write(b)
	r.bytesWritten += int64(bytesWritten)
	return bytesWritten, err
}

func (r *loggerResponseWriter) Flush() {
	r.captureHeaders()
	if flusher, ok := r.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (r *loggerResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := r.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("ResponseWriter does not implement http.Hijacker")
	}

	con, rw, err := hijacker.Hijack()
	if err == nil {
		r.statusCode = http.StatusSwitchingProtocols
	}
	return con, rw, err
}

// Private

func (r *loggerResponseWriter) captureHeaders() {
	if !r.headerWritten {
		r.headerWritten = true
		r.setCookies = len(r.Header()["Set-Cookie"])
	}
}
