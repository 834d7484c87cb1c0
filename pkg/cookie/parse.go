package cookie

import (
	"net/http"
	"strconv"
	"strings"
)

// ParseSetCookie parses the pending Set-Cookie values of a response, in
// order. A nil slice means the header is absent. Blank values are skipped.
func ParseSetCookie(values []string) ([]Cookie, error) {
	cookies := make([]Cookie, 0, len(values))
	for _, v := range values {
		if len(nonEmptySegments(v)) == 0 {
			continue
		}

		c, err := parseSetCookieValue(v)
		if err != nil {
			return nil, err
		}
		cookies = append(cookies, c)
	}
	return cookies, nil
}

// Private

func parseSetCookieValue(header string) (Cookie, error) {
	segments := nonEmptySegments(header)

	name, value, found := strings.Cut(segments[0], "=")
	name = strings.TrimSpace(name)
	if !found || name == "" {
		return Cookie{}, &MalformedHeaderError{Header: header, Segment: segments[0], Reason: "missing cookie name"}
	}

	value = strings.TrimSpace(value)
	c := Cookie{
		name:      name,
		value:     PercentDecode(value),
		wire:      value,
		recovered: true,
		sameSite:  SameSiteLax,
	}

	for _, segment := range segments[1:] {
		err := c.applyAttribute(header, segment)
		if err != nil {
			return Cookie{}, err
		}
	}

	return c, nil
}

func (c *Cookie) applyAttribute(header, segment string) error {
	key, val, hasValue := strings.Cut(segment, "=")
	key = strings.TrimSpace(key)
	val = strings.TrimSpace(val)

	switch strings.ToLower(key) {
	case "domain":
		c.domain = val
	case "path":
		c.path = val
	case "expires":
		c.rawExpires = val
		if t, err := http.ParseTime(val); err == nil {
			c.expires = t.UTC()
			c.rawExpires = ""
		}
	case "max-age":
		seconds, err := strconv.Atoi(val)
		if err != nil {
			return &MalformedHeaderError{Header: header, Segment: segment, Reason: "invalid Max-Age"}
		}
		c.maxAge = seconds
		c.hasMaxAge = true
	case "secure":
		c.secure = true
	case "httponly":
		c.httpOnly = true
	case "samesite":
		sameSite, err := ParseSameSite(val)
		if err != nil {
			return &MalformedHeaderError{Header: header, Segment: segment, Reason: "invalid SameSite"}
		}
		c.sameSite = sameSite
		c.sameSiteDeclared = true
	default:
		c.extensions = append(c.extensions, Extension{Key: key, Value: val, HasValue: hasValue})
	}

	return nil
}

func nonEmptySegments(s string) []string {
	parts := strings.Split(s, ";")
	segments := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}
