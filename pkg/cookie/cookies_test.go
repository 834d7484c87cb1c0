package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_ReplacesExistingCookie(t *testing.T) {
	header := http.Header{"Set-Cookie": {"a=1", "b=2; HttpOnly"}}
	ctx := Context{Response: HTTPHeader(header)}

	require.NoError(t, Set(ctx, "a", "9"))

	assert.Equal(t, []string{"b=2; HttpOnly", "a=9"}, header["Set-Cookie"])
}

func TestSet_WithoutExistingHeader(t *testing.T) {
	header := http.Header{}
	ctx := Context{Response: HTTPHeader(header)}

	require.NoError(t, Set(ctx, "session", "abc", WithPath("/")))

	assert.Equal(t, []string{"session=abc; Path=/"}, header["Set-Cookie"])
}

func TestSet_RejectsInvalidName(t *testing.T) {
	header := http.Header{}
	ctx := Context{Response: HTTPHeader(header)}

	for _, name := range []string{"", "with space", "semi;colon", "a=b"} {
		err := Set(ctx, name, "v")
		assert.ErrorIs(t, err, ErrInvalidName, name)
	}
	assert.Empty(t, header["Set-Cookie"])
}

func TestSet_RejectsInvalidAttributeValues(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"path with separator", WithPath("/; Secure")},
		{"domain with separator", WithDomain("example.com; HttpOnly")},
		{"path with newline", WithPath("/\r\nX-Injected: 1")},
		{"domain with control byte", WithDomain("example.com\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{"Set-Cookie": {"a=1; Path=/"}}
			ctx := Context{Response: HTTPHeader(header)}

			err := Set(ctx, "a", "2", tt.opt)

			require.ErrorIs(t, err, ErrInvalidAttribute)
			assert.Equal(t, []string{"a=1; Path=/"}, header["Set-Cookie"])
		})
	}
}

func TestSet_RepeatedWritesKeepOneEntryPerSlot(t *testing.T) {
	header := http.Header{}
	ctx := Context{Response: HTTPHeader(header)}

	opts := []Option{WithPath("/app"), WithDomain("example.com")}
	require.NoError(t, Set(ctx, "a", "1", opts...))
	require.NoError(t, Set(ctx, "a", "2", opts...))

	assert.Equal(t, []string{"a=2; Domain=example.com; Path=/app"}, header["Set-Cookie"])
}

func TestSet_WritesToDocumentInBrowser(t *testing.T) {
	doc := &testDocument{}
	ctx := Context{Document: doc}

	require.NoError(t, Set(ctx, "theme", "dark mode", WithPath("/")))

	assert.Equal(t, []string{"theme=dark%20mode; Path=/"}, doc.writes)
}

func TestSet_HTTPOnlyInBrowserFailsWithoutMutation(t *testing.T) {
	header := http.Header{"Set-Cookie": {"a=1"}}
	doc := &testDocument{}
	ctx := Context{Response: HTTPHeader(header), Document: doc}

	err := Set(ctx, "secret", "x", WithHTTPOnly(true))

	require.ErrorIs(t, err, ErrHTTPOnlyInBrowser)
	assert.Equal(t, []string{"a=1"}, header["Set-Cookie"])
	assert.Empty(t, doc.writes)
}

func TestSet_WithEmptyContextIsNoop(t *testing.T) {
	assert.NoError(t, Set(Context{}, "a", "1"))
}

func TestDestroy_OverwritesSlot(t *testing.T) {
	header := http.Header{"Set-Cookie": {"t=1; Secure; SameSite=Strict"}}
	ctx := Context{Response: HTTPHeader(header)}

	require.NoError(t, Destroy(ctx, "t", WithSecure(true), WithSameSite(SameSiteStrict)))

	assert.Equal(t, []string{"t=; Max-Age=-1; Secure; SameSite=Strict"}, header["Set-Cookie"])
}

func TestDestroy_OverridesCallerMaxAge(t *testing.T) {
	header := http.Header{}
	ctx := Context{Response: HTTPHeader(header)}

	require.NoError(t, Destroy(ctx, "a", WithMaxAge(3600), WithPath("/")))

	parsed := mustParse(t, header["Set-Cookie"]...)
	require.Len(t, parsed, 1)
	assert.True(t, parsed[0].Destroyed())
	assert.Equal(t, "", parsed[0].Value())

	maxAge, _ := parsed[0].MaxAge()
	assert.Equal(t, -1, maxAge)
}

func TestDestroy_IgnoresCallerEncoder(t *testing.T) {
	header := http.Header{}
	ctx := Context{Response: HTTPHeader(header)}

	prefix := func(s string) string { return "x" + s }
	require.NoError(t, Destroy(ctx, "a", WithEncoder(prefix)))

	assert.Equal(t, []string{"a=; Max-Age=-1"}, header["Set-Cookie"])
}

func TestDestroy_DoesNotModifyCallerOptions(t *testing.T) {
	opts := make([]Option, 1, 4)
	opts[0] = WithPath("/")

	require.NoError(t, Destroy(Context{Response: HTTPHeader(http.Header{})}, "a", opts...))

	assert.Len(t, opts, 1)
	assert.Nil(t, opts[:2][1])
}

func TestDestroy_AfterSetLeavesSingleEntry(t *testing.T) {
	header := http.Header{"Set-Cookie": {"other=1"}}
	ctx := Context{Response: HTTPHeader(header)}

	require.NoError(t, Set(ctx, "session", "abc", WithPath("/"), WithHTTPOnly(true)))
	require.NoError(t, Destroy(ctx, "session", WithPath("/"), WithHTTPOnly(true)))

	assert.Equal(t, []string{"other=1", "session=; Max-Age=-1; Path=/; HttpOnly"}, header["Set-Cookie"])
}

func TestDestroy_InBrowser(t *testing.T) {
	doc := &testDocument{}

	require.NoError(t, Destroy(Context{Document: doc}, "theme"))

	assert.Equal(t, []string{"theme=; Max-Age=-1"}, doc.writes)
}

func TestParse_FromRequest(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Cookie", `a=1; b=hello%20world; a=2; c="quoted"; broken; =nameless`)

	cookies := Parse(Context{Request: HTTPRequest(r), Document: &testDocument{cookie: "ignored=1"}})

	assert.Equal(t, map[string]string{"a": "1", "b": "hello world", "c": "quoted"}, cookies)
}

func TestParse_FromDocument(t *testing.T) {
	cookies := Parse(Context{Request: testRequest(""), Document: &testDocument{cookie: "theme=dark; lang=en"}})

	assert.Equal(t, map[string]string{"theme": "dark", "lang": "en"}, cookies)
}

func TestParse_WithDecoder(t *testing.T) {
	cookies := Parse(Context{Request: testRequest("a=%41")}, WithDecoder(func(s string) string { return s }))

	assert.Equal(t, map[string]string{"a": "%41"}, cookies)
}

func TestParse_EmptyContext(t *testing.T) {
	assert.Empty(t, Parse(Context{}))
}
