package cookie

import "strings"

// Set assigns a cookie in every part of ctx that can carry one: the pending
// response headers and, in a browser, the document.
func Set(ctx Context, name, value string, opts ...Option) error {
	c, err := New(name, value, opts...)
	if err != nil {
		return err
	}

	if ctx.InBrowser() && c.httpOnly {
		return ErrHTTPOnlyInBrowser
	}

	if ctx.Response != nil {
		err = Write(ctx.Response, c)
		if err != nil {
			return err
		}
	}

	if ctx.InBrowser() {
		ctx.Document.SetCookie(Serialize(c))
	}

	return nil
}

// Destroy expires a cookie. opts must describe the same slot the cookie was
// set with, or the browser will keep the original. The value is always
// empty, whatever encoder opts supply.
func Destroy(ctx Context, name string, opts ...Option) error {
	opts = append(opts[:len(opts):len(opts)], WithEncoder(nil), WithMaxAge(-1))
	return Set(ctx, name, "", opts...)
}

type ParseOption func(*parseOptions)

func WithDecoder(decode DecodeFunc) ParseOption {
	return func(o *parseOptions) { o.decode = decode }
}

// Parse returns the cookies the client sent: the request Cookie header when
// there is one, otherwise the browser document, otherwise nothing.
func Parse(ctx Context, opts ...ParseOption) map[string]string {
	options := parseOptions{decode: PercentDecode}
	for _, opt := range opts {
		opt(&options)
	}

	if ctx.Request != nil {
		if header := ctx.Request.CookieHeader(); header != "" {
			return parseCookieString(header, options.decode)
		}
	}

	if ctx.InBrowser() {
		return parseCookieString(ctx.Document.Cookie(), options.decode)
	}

	return map[string]string{}
}

// Private

type parseOptions struct {
	decode DecodeFunc
}

func parseCookieString(s string, decode DecodeFunc) map[string]string {
	cookies := map[string]string{}

	for _, pair := range strings.Split(s, ";") {
		name, value, found := strings.Cut(pair, "=")
		if !found {
			continue
		}

		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, seen := cookies[name]; seen {
			continue
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
			value = value[1 : len(value)-1]
		}

		cookies[name] = decode(value)
	}

	return cookies
}
