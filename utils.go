package strview

import "github.com/rawbytedev/strview/internal/common"

// UnsafeString aliases the viewed bytes as a string without copying.
// Opt-in: the result shares memory with the backing buffer and must
// not outlive it. Use String for an owned copy.
func (v View) UnsafeString() string {
	if v.k == kindInvalid || len(v.b) == 0 {
		return ""
	}
	return common.B2S(v.b)
}
