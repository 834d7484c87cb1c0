// Package cookie reads, writes and removes HTTP cookies through one API,
// whether the code is rendering a response on the server or running in a
// browser.
//
// Writes against a response are merged into the Set-Cookie values already
// queued on it. A cookie written twice to the same slot (name, domain,
// path, HttpOnly, Secure and SameSite) replaces the earlier entry instead of
// producing a second, conflicting one. Destroy is a write with an empty
// value and Max-Age=-1, so it follows the same rules.
//
//	ctx := cookie.Context{Response: cookie.HTTPHeader(w.Header())}
//	cookie.Set(ctx, "session", token, cookie.WithPath("/"), cookie.WithHTTPOnly(true))
//	cookie.Destroy(ctx, "flash", cookie.WithPath("/"))
//
// Writes are not safe for concurrent use against the same response.
package cookie
