package cookie

// SameSlot reports whether a and b target the same stored cookie, so that
// sending b after a overwrites a. Value, expiry and unrecognised attributes
// don't take part: a new value for the same slot is an update.
func SameSlot(a, b Cookie) bool {
	return a.name == b.name &&
		a.domain == b.domain &&
		a.path == b.path &&
		a.httpOnly == b.httpOnly &&
		a.secure == b.secure &&
		a.sameSite == b.sameSite
}
