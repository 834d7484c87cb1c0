package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_ServesPagesWithCookies(t *testing.T) {
	server := testServer(t, defaultCookieDefaults)
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", server.HttpPort())

	resp, err := http.Get(baseURL + "/create?flavour=oatmeal")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Equal(t, []string{"visits=1; Path=/", "flavour=oatmeal; Path=/"}, resp.Header["Set-Cookie"])
}

func TestServer_HealthCheck(t *testing.T) {
	server := testServer(t, defaultCookieDefaults)

	resp, err := http.Get(fmt.Sprintf("http://127.0.0.1:%d/up", server.HttpPort()))
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
