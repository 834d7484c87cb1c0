package cookie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testResponseHeader struct {
	values    []string
	finalized bool
	replaced  int
}

func (h *testResponseHeader) SetCookieValues() []string { return h.values }
func (h *testResponseHeader) Finalized() bool           { return h.finalized }

func (h *testResponseHeader) ReplaceSetCookie(values []string) {
	h.values = values
	h.replaced++
}

type testDocument struct {
	cookie string
	writes []string
}

func (d *testDocument) Cookie() string { return d.cookie }

func (d *testDocument) SetCookie(s string) {
	d.writes = append(d.writes, s)
}

type testRequest string

func (r testRequest) CookieHeader() string { return string(r) }

func mustNew(t testing.TB, name, value string, opts ...Option) Cookie {
	t.Helper()

	c, err := New(name, value, opts...)
	require.NoError(t, err)
	return c
}

func mustParse(t testing.TB, values ...string) []Cookie {
	t.Helper()

	cookies, err := ParseSetCookie(values)
	require.NoError(t, err)
	return cookies
}
