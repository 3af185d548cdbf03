package catalogs

// Lookup returns the first entry whose ID equals id exactly. The boolean is
// false when no entry matches.
func Lookup[E Entry](entries []E, id string) (E, bool) {
	for _, e := range entries {
		if e.Common().ID == id {
			return e, true
		}
	}
	var zero E
	return zero, false
}
