package server

import (
	"bufio"
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/basecamp/cookie-composer/pkg/cookie"
)

var contextKeyCookieWriter = contextKey("cookie-writer")

type CookieContextMiddleware struct {
	next http.Handler
}

// WithCookieContextMiddleware tracks whether the response has been sent, so
// that handlers and later middleware can write cookies through
// CookieContext.
func WithCookieContextMiddleware(next http.Handler) http.Handler {
	return &CookieContextMiddleware{
		next: next,
	}
}

func (h *CookieContextMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writer := newCookieResponseWriter(w)

	ctx := context.WithValue(r.Context(), contextKeyCookieWriter, writer)
	h.next.ServeHTTP(writer, r.WithContext(ctx))
}

// CookieContext returns the cookie context for a request handled behind
// WithCookieContextMiddleware. Without the middleware the response header is
// used directly and is never considered finalized.
func CookieContext(w http.ResponseWriter, r *http.Request) cookie.Context {
	ctx := cookie.Context{Request: cookie.HTTPRequest(r)}

	if writer, ok := r.Context().Value(contextKeyCookieWriter).(*cookieResponseWriter); ok {
		ctx.Response = writer
	} else {
		ctx.Response = cookie.HTTPHeader(w.Header())
	}

	return ctx
}

type cookieResponseWriter struct {
	http.ResponseWriter
	finalized bool
}

func newCookieResponseWriter(w http.ResponseWriter) *cookieResponseWriter {
	return &cookieResponseWriter{ResponseWriter: w}
}

func (w *cookieResponseWriter) SetCookieValues() []string {
	return w.Header()["Set-Cookie"]
}

func (w *cookieResponseWriter) ReplaceSetCookie(values []string) {
	w.Header()["Set-Cookie"] = values
}

func (w *cookieResponseWriter) Finalized() bool {
	return w.finalized
}

func (w *cookieResponseWriter) WriteHeader(statusCode int) {
	// 1xx responses leave the final headers open
	if statusCode >= http.StatusOK || statusCode == http.StatusSwitchingProtocols {
		w.finalized = true
	}
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *cookieResponseWriter) Write(b []byte) (int, error) {
	w.finalized = true
	return w.ResponseWriter.Write(b)
}

func (w *cookieResponseWriter) Flush() {
	w.finalized = true
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

func (w *cookieResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hijacker, ok := w.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("ResponseWriter does not implement http.Hijacker")
	}

	w.finalized = true
	return hijacker.Hijack()
}

func (w *cookieResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
