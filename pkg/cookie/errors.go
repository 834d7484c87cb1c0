package cookie

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedHeader   = errors.New("malformed Set-Cookie header")
	ErrResponseFinalized = errors.New("response has finished")
	ErrHTTPOnlyInBrowser = errors.New("can not set a httpOnly cookie in the browser")
)

// MalformedHeaderError describes a Set-Cookie value that could not be parsed.
// Such values are never dropped silently, since the lost attribute could be
// the one that restricted the cookie.
type MalformedHeaderError struct {
	Header  string
	Segment string
	Reason  string
}

func (e *MalformedHeaderError) Error() string {
	return fmt.Sprintf("%s: %s in segment %q", ErrMalformedHeader, e.Reason, e.Segment)
}

func (e *MalformedHeaderError) Is(target error) bool {
	return target == ErrMalformedHeader
}
