package server

import (
	"log/slog"
	"net/http"
	"strconv"
)

const VisitsCookie = "visits"

type VisitMiddleware struct {
	defaults CookieDefaults
	next     http.Handler
}

// WithVisitMiddleware counts page visits in a cookie before the handler
// runs. Handlers that write cookies of their own add to the same
// Set-Cookie header.
func WithVisitMiddleware(defaults CookieDefaults, next http.Handler) http.Handler {
	return &VisitMiddleware{
		defaults: defaults,
		next:     next,
	}
}

func (h *VisitMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	visits := 0
	if c, err := r.Cookie(VisitsCookie); err == nil {
		visits, _ = strconv.Atoi(c.Value)
	}

	err := SetCookie(w, r, VisitsCookie, strconv.Itoa(visits+1), h.defaults.WriteOptions()...)
	if err != nil {
		slog.Warn("Visit counter not updated", "path", r.URL.Path, "error", err)
	}

	h.next.ServeHTTP(w, r)
}
