package common

import "unsafe"

// S2B aliases s as a byte slice without copying. The result shares
// memory with s and must be treated as read-only; strings are
// immutable. Callers guarantee len(s) > 0.
func S2B(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// B2S aliases b as a string without copying. The string becomes
// invalid if b is modified or its backing buffer is reused. Callers
// guarantee len(b) > 0.
func B2S(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
