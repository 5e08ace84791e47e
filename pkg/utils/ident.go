package utils

import "strconv"

// ParseID parses an externally supplied identifier token. Anything that is not
// a positive int64 is rejected before it can reach a store lookup.
func ParseID(v string) (int64, bool) {
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// ValidID reports whether an already-decoded identifier is well formed.
func ValidID(id int64) bool {
	return id > 0
}
