package strview

import "bytes"

// Eq reports equality by length and content. Invalid equals only
// Invalid; all valid zero-length views (Empty and NotFound alike)
// compare equal.
func (v View) Eq(o View) bool {
	if v.k == kindInvalid || o.k == kindInvalid {
		return v.k == kindInvalid && o.k == kindInvalid
	}
	if len(v.b) != len(o.b) {
		return false
	}
	if len(v.b) == 0 {
		return true
	}
	return bytes.Equal(v.b, o.b)
}

// Cmp orders views lexicographically: Invalid sorts before any valid
// view, empty before non-empty, and views sharing a prefix tiebreak on
// length.
func (v View) Cmp(o View) int {
	vInv, oInv := v.k == kindInvalid, o.k == kindInvalid
	switch {
	case vInv && oInv:
		return 0
	case vInv:
		return -1
	case oInv:
		return 1
	}
	return bytes.Compare(v.b, o.b)
}

// HasPrefix reports whether v starts with prefix. False when either
// side is invalid; an empty prefix always matches.
func (v View) HasPrefix(prefix View) bool {
	if v.k == kindInvalid || prefix.k == kindInvalid {
		return false
	}
	return bytes.HasPrefix(v.b, prefix.b)
}

// HasSuffix reports whether v ends with suffix. Same invalid and
// empty-pattern rules as HasPrefix.
func (v View) HasSuffix(suffix View) bool {
	if v.k == kindInvalid || suffix.k == kindInvalid {
		return false
	}
	return bytes.HasSuffix(v.b, suffix.b)
}
