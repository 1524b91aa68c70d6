package strview

// ASCII classification predicates for the find, trim and split
// families. Single-byte only; none of these are Unicode-aware.

// IsSpace matches ASCII whitespace.
func IsSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// IsDigit matches '0'..'9'.
func IsDigit(c byte) bool { return c >= '0' && c <= '9' }

// IsUpper matches 'A'..'Z'.
func IsUpper(c byte) bool { return c >= 'A' && c <= 'Z' }

// IsLower matches 'a'..'z'.
func IsLower(c byte) bool { return c >= 'a' && c <= 'z' }

// IsAlpha matches ASCII letters.
func IsAlpha(c byte) bool { return IsUpper(c) || IsLower(c) }

// IsAlphaNum matches ASCII letters and digits.
func IsAlphaNum(c byte) bool { return IsAlpha(c) || IsDigit(c) }

// IsHexDigit matches 0-9, a-f and A-F.
func IsHexDigit(c byte) bool {
	return IsDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// AnyOf builds a predicate matching any byte present in set. The
// lookup table is built once; the returned Pred does not allocate.
func AnyOf(set string) Pred {
	var table [256]bool
	for i := 0; i < len(set); i++ {
		table[set[i]] = true
	}
	return func(c byte) bool { return table[c] }
}

// Not inverts pred. A nil pred follows the "never matches" convention,
// so Not(nil) matches everything.
func Not(pred Pred) Pred {
	if pred == nil {
		return func(byte) bool { return true }
	}
	return func(c byte) bool { return !pred(c) }
}
