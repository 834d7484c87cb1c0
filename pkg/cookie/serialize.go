package cookie

import (
	"net/http"
	"strconv"
	"strings"
)

// Serialize renders the cookie as a Set-Cookie value. Attributes are always
// written in the same order: Max-Age, Domain, Path, Expires, HttpOnly,
// Secure, SameSite, then any unrecognised attributes as they were parsed.
func Serialize(c Cookie) string {
	var b strings.Builder

	b.WriteString(c.name)
	b.WriteByte('=')
	b.WriteString(c.wireValue())

	if c.hasMaxAge {
		b.WriteString("; Max-Age=")
		b.WriteString(strconv.Itoa(c.maxAge))
	}
	if c.domain != "" {
		b.WriteString("; Domain=")
		b.WriteString(c.domain)
	}
	if c.path != "" {
		b.WriteString("; Path=")
		b.WriteString(c.path)
	}
	if !c.expires.IsZero() {
		b.WriteString("; Expires=")
		b.WriteString(c.expires.UTC().Format(http.TimeFormat))
	} else if c.rawExpires != "" {
		b.WriteString("; Expires=")
		b.WriteString(c.rawExpires)
	}
	if c.httpOnly {
		b.WriteString("; HttpOnly")
	}
	if c.secure {
		b.WriteString("; Secure")
	}
	if c.sameSiteDeclared {
		b.WriteString("; SameSite=")
		b.WriteString(c.sameSite.String())
	}
	for _, ext := range c.extensions {
		b.WriteString("; ")
		b.WriteString(ext.String())
	}

	return b.String()
}

func SerializeAll(cookies []Cookie) []string {
	values := make([]string, len(cookies))
	for i, c := range cookies {
		values[i] = Serialize(c)
	}
	return values
}

// Private

// wireValue never re-encodes a value recovered from a header; it is already
// in wire form.
func (c Cookie) wireValue() string {
	if c.recovered {
		return c.wire
	}
	if c.encode != nil {
		return c.encode(c.value)
	}
	return PercentEncode(c.value)
}
