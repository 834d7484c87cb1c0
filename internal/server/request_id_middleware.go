package server

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

type RequestIDMiddleware struct {
	next http.Handler
}

func WithRequestIDMiddleware(next http.Handler) http.Handler {
	return &RequestIDMiddleware{
		next: next,
	}
}

func (h *RequestIDMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(requestIDHeader)
	if id == "" {
		id = h.generateID()
		r.Header.Set(requestIDHeader, id)
	}

	w.Header().Set(requestIDHeader, id)
	h.next.ServeHTTP(w, r)
}

func (h *RequestIDMiddleware) generateID() string {
	return uuid.New().String()
}
