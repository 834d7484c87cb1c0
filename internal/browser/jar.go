package browser

import (
	"strings"
	"time"

	"github.com/basecamp/cookie-composer/pkg/cookie"
)

type slotKey struct {
	name   string
	domain string
	path   string
}

type jarEntry struct {
	cookie    cookie.Cookie
	expiresAt time.Time
}

// Jar stores cookies the way a browser does for a single origin: one entry
// per name, domain and path, dropped once expired.
type Jar struct {
	entries []jarEntry
	now     func() time.Time
}

func NewJar(now func() time.Time) *Jar {
	return &Jar{now: now}
}

// Store applies one Set-Cookie assignment made from script. Assignments a
// browser would reject, including HttpOnly ones, are ignored.
func (j *Jar) Store(setCookie string) bool {
	cookies, err := cookie.ParseSetCookie([]string{setCookie})
	if err != nil || len(cookies) == 0 || cookies[0].HTTPOnly() {
		return false
	}

	c := cookies[0]
	key := keyFor(c)
	j.remove(key)

	expiresAt, expired := j.expiry(c)
	if expired {
		return true
	}

	j.entries = append(j.entries, jarEntry{cookie: c, expiresAt: expiresAt})
	return true
}

// String renders the live cookies as document.cookie does.
func (j *Jar) String() string {
	pairs := []string{}
	for _, c := range j.Cookies() {
		pairs = append(pairs, c.Pair())
	}
	return strings.Join(pairs, "; ")
}

func (j *Jar) Cookies() []cookie.Cookie {
	j.purge()

	cookies := make([]cookie.Cookie, len(j.entries))
	for i, e := range j.entries {
		cookies[i] = e.cookie
	}
	return cookies
}

// Private

func (j *Jar) expiry(c cookie.Cookie) (time.Time, bool) {
	now := j.now()

	if maxAge, ok := c.MaxAge(); ok {
		if maxAge <= 0 {
			return time.Time{}, true
		}
		return now.Add(time.Duration(maxAge) * time.Second), false
	}

	if expires := c.Expires(); !expires.IsZero() {
		return expires, !expires.After(now)
	}

	return time.Time{}, false
}

func (j *Jar) remove(key slotKey) {
	kept := j.entries[:0]
	for _, e := range j.entries {
		if keyFor(e.cookie) != key {
			kept = append(kept, e)
		}
	}
	j.entries = kept
}

func (j *Jar) purge() {
	now := j.now()

	kept := j.entries[:0]
	for _, e := range j.entries {
		if e.expiresAt.IsZero() || e.expiresAt.After(now) {
			kept = append(kept, e)
		}
	}
	j.entries = kept
}

func keyFor(c cookie.Cookie) slotKey {
	return slotKey{name: c.Name(), domain: c.Domain(), path: c.Path()}
}
