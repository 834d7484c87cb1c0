package cookie

import "net/http"

const (
	setCookieHeader = "Set-Cookie"
	cookieHeader    = "Cookie"
)

// ResponseHeader gives access to the pending Set-Cookie values of an
// outgoing response.
type ResponseHeader interface {
	// SetCookieValues returns the current values, or nil when the header is
	// absent.
	SetCookieValues() []string
	ReplaceSetCookie(values []string)
	// Finalized reports whether the headers were already sent.
	Finalized() bool
}

// Document is the cookie jar of a browser, seen through its single string
// property.
type Document interface {
	Cookie() string
	SetCookie(s string)
}

type RequestHeader interface {
	CookieHeader() string
}

// Context is the environment an operation runs in. Any part may be nil: a
// server render has a Request and Response, code running in a browser has a
// Document.
type Context struct {
	Request  RequestHeader
	Response ResponseHeader
	Document Document
}

func (c Context) InBrowser() bool {
	return c.Document != nil
}

// HTTPHeader adapts a plain http.Header. It never reports itself finalized;
// use it for headers that are still being assembled.
type HTTPHeader http.Header

func (h HTTPHeader) SetCookieValues() []string {
	return http.Header(h)[setCookieHeader]
}

func (h HTTPHeader) ReplaceSetCookie(values []string) {
	http.Header(h)[setCookieHeader] = values
}

func (h HTTPHeader) Finalized() bool {
	return false
}

func HTTPRequest(r *http.Request) RequestHeader {
	return httpRequest{r}
}

// Private

type httpRequest struct {
	r *http.Request
}

func (r httpRequest) CookieHeader() string {
	return r.r.Header.Get(cookieHeader)
}
