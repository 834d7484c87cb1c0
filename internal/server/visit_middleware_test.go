package server

import (
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitMiddleware_IncrementsCounter(t *testing.T) {
	handler := WithCookieContextMiddleware(WithVisitMiddleware(defaultCookieDefaults, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})))

	w := testRequest(t, handler, "/", "visits=4")

	cookies := testParseSetCookie(t, w)
	require.Len(t, cookies, 1)
	assert.Equal(t, VisitsCookie, cookies[0].Name())
	assert.Equal(t, "5", cookies[0].Value())
}

func TestVisitMiddleware_LogsFailedWriteAndContinues(t *testing.T) {
	out := &strings.Builder{}
	previous := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(out, nil)))
	t.Cleanup(func() { slog.SetDefault(previous) })

	called := false
	defaults := CookieDefaults{Path: "/; Secure"}
	handler := WithCookieContextMiddleware(WithVisitMiddleware(defaults, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})))

	w := testRequest(t, handler, "/", "")

	assert.True(t, called)
	assert.Empty(t, w.Result().Header["Set-Cookie"])
	assert.Contains(t, out.String(), "Visit counter not updated")
}
