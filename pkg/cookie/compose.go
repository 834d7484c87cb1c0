package cookie

import "log/slog"

// Compose returns the cookie set that results from sending incoming after
// existing: every existing cookie in the same slot is dropped and incoming is
// appended. existing is not modified.
func Compose(existing []Cookie, incoming Cookie) []Cookie {
	result := make([]Cookie, 0, len(existing)+1)
	for _, c := range existing {
		if !SameSlot(c, incoming) {
			result = append(result, c)
		}
	}
	return append(result, incoming)
}

// Write merges c into the Set-Cookie header of h. The header is read on every
// call, so consecutive writes to the same response accumulate. Writing to a
// finalized response is skipped with a warning.
func Write(h ResponseHeader, c Cookie) error {
	if h.Finalized() {
		slog.Warn("Not setting cookie, set cookies before the response is sent", "name", c.name, "error", ErrResponseFinalized)
		return nil
	}

	existing, err := ParseSetCookie(h.SetCookieValues())
	if err != nil {
		return err
	}

	h.ReplaceSetCookie(SerializeAll(Compose(existing, c)))
	return nil
}
