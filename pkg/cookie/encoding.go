package cookie

import (
	"net/url"
	"strings"
)

type (
	EncodeFunc func(string) string
	DecodeFunc func(string) string
)

// uriComponentReplacer undoes the escapes QueryEscape applies beyond
// encodeURIComponent, and spells spaces as %20.
var uriComponentReplacer = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// PercentEncode escapes values the way encodeURIComponent does, so that the
// result is a valid cookie-octet sequence.
func PercentEncode(s string) string {
	return uriComponentReplacer.Replace(url.QueryEscape(s))
}

// PercentDecode reverses PercentEncode. Values that are not valid escapes
// are returned unchanged.
func PercentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	decoded, err := url.PathUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
