package strview

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestTrimLeft(t *testing.T) {
	s := FromString("   abc  ")
	require.Equal(t, "abc  ", s.TrimLeft(IsSpace).String())
	require.Equal(t, s.String(), s.TrimLeft(IsDigit).String(), "no leading match")
	require.Equal(t, s.String(), s.TrimLeft(nil).String(), "nil pred trims nothing")
	require.True(t, FromString("   ").TrimLeft(IsSpace).IsEmpty())
	require.True(t, Empty.TrimLeft(IsSpace).IsEmpty())
	require.True(t, Invalid.TrimLeft(IsSpace).IsInvalid())
}

func TestTrimRight(t *testing.T) {
	s := FromString("   abc  ")
	require.Equal(t, "   abc", s.TrimRight(IsSpace).String())
	require.Equal(t, s.String(), s.TrimRight(nil).String())
	require.True(t, FromString("\t\n").TrimRight(IsSpace).IsEmpty())
	require.True(t, Invalid.TrimRight(IsSpace).IsInvalid())
}

func TestTrim(t *testing.T) {
	require.Equal(t, "abc", FromString("   abc  ").Trim(IsSpace).String())
	require.Equal(t, "b c", FromString("xxb cxx").Trim(AnyOf("x")).String())
	require.True(t, FromString("  ").Trim(IsSpace).IsEmpty())
	require.Equal(t, "abc", FromString("abc").Trim(nil).String())
	require.True(t, Invalid.Trim(IsSpace).IsInvalid())
}

func TestTrimAliases(t *testing.T) {
	buf := []byte("  core  ")
	got := FromBytes(buf).Trim(IsSpace)
	require.Same(t, &buf[2], &got.Bytes()[0], "trim must not copy")
	require.Equal(t, 4, got.Len())
}

func TestTrimIdempotent(t *testing.T) {
	idempotent := func(b []byte) bool {
		once := FromBytes(b).Trim(IsSpace)
		return once.Trim(IsSpace).Eq(once)
	}
	require.NoError(t, quick.Check(idempotent, nil))
}

func TestPredHelpers(t *testing.T) {
	require.True(t, IsHexDigit('f') && IsHexDigit('F') && IsHexDigit('0'))
	require.False(t, IsHexDigit('g'))
	require.True(t, IsAlphaNum('z') && IsAlphaNum('9'))
	require.False(t, IsAlphaNum('_'))

	vowel := AnyOf("aeiou")
	require.True(t, vowel('e'))
	require.False(t, vowel('x'))

	require.True(t, Not(IsDigit)('a'))
	require.False(t, Not(IsDigit)('7'))
	require.True(t, Not(nil)('q'), "nil pred never matches, so its inverse always does")
}
