package server

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/basecamp/cookie-composer/pkg/cookie"
)

func TestLoadCookieDefaults_MissingFileUsesDefaults(t *testing.T) {
	defaults, err := LoadCookieDefaults(filepath.Join(t.TempDir(), "missing.yml"))

	require.NoError(t, err)
	assert.Equal(t, CookieDefaults{Path: "/"}, defaults)
}

func TestLoadCookieDefaults_ReadsYAML(t *testing.T) {
	path := writeConfig(t, `
domain: example.com
path: /app
secure: true
http_only: true
same_site: None
max_age: 3600
`)

	defaults, err := LoadCookieDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, CookieDefaults{
		Domain:   "example.com",
		Path:     "/app",
		Secure:   true,
		HTTPOnly: true,
		SameSite: "None",
		MaxAge:   3600,
	}, defaults)

	c, err := cookie.New("a", "1", defaults.WriteOptions()...)
	require.NoError(t, err)
	assert.Equal(t, "a=1; Max-Age=3600; Domain=example.com; Path=/app; HttpOnly; Secure; SameSite=None", c.String())
}

func TestLoadCookieDefaults_KeepsDefaultPathWhenOmitted(t *testing.T) {
	path := writeConfig(t, "secure: true\n")

	defaults, err := LoadCookieDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, "/", defaults.Path)
	assert.True(t, defaults.Secure)
}

func TestLoadCookieDefaults_RejectsInvalidSameSite(t *testing.T) {
	path := writeConfig(t, "same_site: sometimes\n")

	_, err := LoadCookieDefaults(path)

	require.ErrorIs(t, err, cookie.ErrInvalidSameSite)
}

func TestLoadCookieDefaults_RejectsInvalidPath(t *testing.T) {
	path := writeConfig(t, "path: \"/; Secure\"\n")

	_, err := LoadCookieDefaults(path)
	assert.ErrorIs(t, err, cookie.ErrInvalidAttribute)
}

func TestLoadCookieDefaults_RejectsInvalidYAML(t *testing.T) {
	path := writeConfig(t, "max_age: [1, 2\n")

	_, err := LoadCookieDefaults(path)

	require.Error(t, err)
}

func TestCookieDefaults_SlotOptionsOmitMaxAge(t *testing.T) {
	defaults := CookieDefaults{Path: "/", MaxAge: 60}

	c, err := cookie.New("a", "1", defaults.SlotOptions()...)
	require.NoError(t, err)

	_, hasMaxAge := c.MaxAge()
	assert.False(t, hasMaxAge)
}

func TestConfig_CookieConfigFile(t *testing.T) {
	assert.Equal(t, "/etc/cookies.yml", Config{CookieConfigPath: "/etc/cookies.yml"}.CookieConfigFile())
	assert.Equal(t, "cookies.yml", filepath.Base(Config{}.CookieConfigFile()))
}

// Private

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cookies.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
