package server

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/basecamp/cookie-composer/internal/metrics"
	"github.com/basecamp/cookie-composer/pkg/cookie"
)

var defaultCookieDefaults = CookieDefaults{Path: DefaultCookiePath}

type recordingTracker struct {
	lock   sync.Mutex
	writes []string
}

func (t *recordingTracker) TrackRequest(method string, status int, duration time.Duration) {}

func (t *recordingTracker) TrackCookieWrite(operation, outcome string) {
	t.lock.Lock()
	defer t.lock.Unlock()

	t.writes = append(t.writes, operation+":"+outcome)
}

func testRecordingTracker(t testing.TB) *recordingTracker {
	t.Helper()

	previous := metrics.Tracker
	tracker := &recordingTracker{}
	metrics.Tracker = tracker
	t.Cleanup(func() { metrics.Tracker = previous })

	return tracker
}

func testRequest(t testing.TB, handler http.Handler, path string, cookieHeader string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest("GET", path, nil)
	if cookieHeader != "" {
		r.Header.Set("Cookie", cookieHeader)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func testParseSetCookie(t testing.TB, w *httptest.ResponseRecorder) []cookie.Cookie {
	t.Helper()

	cookies, err := cookie.ParseSetCookie(w.Result().Header["Set-Cookie"])
	require.NoError(t, err)
	return cookies
}

func testServer(t testing.TB, defaults CookieDefaults) *Server {
	t.Helper()

	config := &Config{
		Bind:     "127.0.0.1",
		HttpPort: 0,
	}
	server := NewServer(config, defaults)
	err := server.Start()
	require.NoError(t, err)

	t.Cleanup(server.Stop)

	return server
}
