package cookie

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/net/http/httpguts"
)

var (
	ErrInvalidName      = errors.New("cookie name is invalid")
	ErrInvalidAttribute = errors.New("cookie attribute value is invalid")
	ErrInvalidSameSite  = errors.New("invalid SameSite value")
)

type SameSite int

const (
	SameSiteLax SameSite = iota
	SameSiteStrict
	SameSiteNone
)

func ParseSameSite(s string) (SameSite, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lax":
		return SameSiteLax, nil
	case "strict":
		return SameSiteStrict, nil
	case "none":
		return SameSiteNone, nil
	default:
		return SameSiteLax, fmt.Errorf("%w: %q", ErrInvalidSameSite, s)
	}
}

func (s SameSite) String() string {
	switch s {
	case SameSiteStrict:
		return "Strict"
	case SameSiteNone:
		return "None"
	default:
		return "Lax"
	}
}

// Extension is an attribute the parser did not recognise. It is carried
// through unchanged so that rewriting a header never drops it.
type Extension struct {
	Key      string
	Value    string
	HasValue bool
}

func (e Extension) String() string {
	if e.HasValue {
		return e.Key + "=" + e.Value
	}
	return e.Key
}

// Cookie is one cookie assignment. Values are built with New or recovered
// from a Set-Cookie header with ParseSetCookie and never change afterwards.
type Cookie struct {
	name  string
	value string

	// wire holds the value exactly as it appeared in a parsed header.
	wire      string
	recovered bool

	domain     string
	path       string
	expires    time.Time
	rawExpires string
	maxAge     int
	hasMaxAge  bool
	secure     bool
	httpOnly   bool

	sameSite         SameSite
	sameSiteDeclared bool

	extensions []Extension
	encode     EncodeFunc
}

type Option func(*Cookie)

func WithDomain(domain string) Option {
	return func(c *Cookie) { c.domain = domain }
}

func WithPath(path string) Option {
	return func(c *Cookie) { c.path = path }
}

func WithExpires(t time.Time) Option {
	return func(c *Cookie) {
		c.expires = t
		c.rawExpires = ""
	}
}

// WithMaxAge sets Max-Age in seconds. Negative values expire the cookie
// immediately.
func WithMaxAge(seconds int) Option {
	return func(c *Cookie) {
		c.maxAge = seconds
		c.hasMaxAge = true
	}
}

func WithSecure(secure bool) Option {
	return func(c *Cookie) { c.secure = secure }
}

func WithHTTPOnly(httpOnly bool) Option {
	return func(c *Cookie) { c.httpOnly = httpOnly }
}

func WithSameSite(s SameSite) Option {
	return func(c *Cookie) {
		c.sameSite = s
		c.sameSiteDeclared = true
	}
}

// WithLegacySameSite accepts the boolean form of SameSite. true means Strict.
// false leaves the attribute off the header, which browsers treat as Lax.
func WithLegacySameSite(strict bool) Option {
	if strict {
		return WithSameSite(SameSiteStrict)
	}
	return func(c *Cookie) {
		c.sameSite = SameSiteLax
		c.sameSiteDeclared = false
	}
}

func WithEncoder(encode EncodeFunc) Option {
	return func(c *Cookie) { c.encode = encode }
}

// WithoutEncoding writes the value as given, for values that are already
// encoded.
func WithoutEncoding() Option {
	return WithEncoder(func(s string) string { return s })
}

func New(name, value string, opts ...Option) (Cookie, error) {
	if !validName(name) {
		return Cookie{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	c := Cookie{
		name:     name,
		value:    value,
		sameSite: SameSiteLax,
	}
	for _, opt := range opts {
		opt(&c)
	}

	if !validAttributeValue(c.domain) {
		return Cookie{}, fmt.Errorf("%w: domain %q", ErrInvalidAttribute, c.domain)
	}
	if !validAttributeValue(c.path) {
		return Cookie{}, fmt.Errorf("%w: path %q", ErrInvalidAttribute, c.path)
	}

	return c, nil
}

func (c Cookie) Name() string   { return c.name }
func (c Cookie) Value() string  { return c.value }
func (c Cookie) Domain() string { return c.domain }
func (c Cookie) Path() string   { return c.path }

// Expires returns the parsed expiry time, or the zero time when the
// attribute is absent or could not be parsed.
func (c Cookie) Expires() time.Time { return c.expires }

func (c Cookie) MaxAge() (int, bool) { return c.maxAge, c.hasMaxAge }
func (c Cookie) Secure() bool        { return c.secure }
func (c Cookie) HTTPOnly() bool      { return c.httpOnly }
func (c Cookie) SameSite() SameSite  { return c.sameSite }

// SameSiteDeclared reports whether SameSite was given explicitly rather than
// defaulted to Lax.
func (c Cookie) SameSiteDeclared() bool { return c.sameSiteDeclared }

func (c Cookie) Extensions() []Extension {
	return append([]Extension(nil), c.extensions...)
}

// Destroyed reports whether the cookie carries the destroy marker.
func (c Cookie) Destroyed() bool {
	return c.hasMaxAge && c.maxAge < 0
}

func (c Cookie) Equal(other Cookie) bool {
	if c.name != other.name || c.value != other.value ||
		c.domain != other.domain || c.path != other.path ||
		!c.expires.Equal(other.expires) || c.rawExpires != other.rawExpires ||
		c.hasMaxAge != other.hasMaxAge || c.maxAge != other.maxAge ||
		c.secure != other.secure || c.httpOnly != other.httpOnly ||
		c.sameSite != other.sameSite || c.sameSiteDeclared != other.sameSiteDeclared {
		return false
	}

	if len(c.extensions) != len(other.extensions) {
		return false
	}
	for i := range c.extensions {
		if c.extensions[i] != other.extensions[i] {
			return false
		}
	}

	return true
}

// Pair returns name=value in wire form, as a client sends it back in a
// Cookie header.
func (c Cookie) Pair() string {
	return c.name + "=" + c.wireValue()
}

func (c Cookie) String() string {
	return Serialize(c)
}

// Private

func validName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		if !httpguts.IsTokenRune(r) {
			return false
		}
	}
	return true
}

// validAttributeValue rejects values that would end the attribute early and
// smuggle in attributes of their own.
func validAttributeValue(v string) bool {
	return httpguts.ValidHeaderFieldValue(v) && !strings.ContainsRune(v, ';')
}
