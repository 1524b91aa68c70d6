package strview

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindByte(t *testing.T) {
	s := FromString("key=value")
	require.Equal(t, "=value", s.FindByte('=').String())
	require.Equal(t, "key=value", s.FindByte('k').String())
	require.True(t, s.FindByte('!').IsEmpty())
	require.True(t, Empty.FindByte('a').IsEmpty())
	require.True(t, Invalid.FindByte('a').IsInvalid())
}

func TestFindByteAliases(t *testing.T) {
	buf := []byte("abca")
	found := FromBytes(buf).FindByte('c')
	require.Same(t, &buf[2], &found.Bytes()[0], "suffix must point into the source buffer")
}

func TestRFindByte(t *testing.T) {
	s := FromString("a.b.c")
	require.Equal(t, ".c", s.RFindByte('.').String())
	require.Equal(t, "a.b.c", s.RFindByte('a').String())
	require.True(t, s.RFindByte('!').IsEmpty())
	require.True(t, Invalid.RFindByte('.').IsInvalid())
}

func TestFindFunc(t *testing.T) {
	s := FromString("abc 123")
	require.Equal(t, "123", s.FindFunc(IsDigit).String())
	require.Equal(t, " 123", s.FindFunc(IsSpace).String())
	require.True(t, s.FindFunc(IsUpper).IsEmpty())
	require.True(t, s.FindFunc(nil).IsEmpty(), "nil pred never matches")
	require.True(t, Empty.FindFunc(IsDigit).IsEmpty())
	require.True(t, Invalid.FindFunc(IsDigit).IsInvalid())
}

func TestRFindFunc(t *testing.T) {
	s := FromString("1a2b3c")
	require.Equal(t, "3c", s.RFindFunc(IsDigit).String())
	require.Equal(t, "c", s.RFindFunc(IsLower).String())
	require.True(t, s.RFindFunc(IsSpace).IsEmpty())
	require.True(t, s.RFindFunc(nil).IsEmpty())
	require.True(t, Invalid.RFindFunc(IsDigit).IsInvalid())
}

func TestFindFirstNotFunc(t *testing.T) {
	s := FromString("   abc")
	require.Equal(t, "abc", s.FindFirstNotFunc(IsSpace).String())
	require.True(t, FromString("   ").FindFirstNotFunc(IsSpace).IsEmpty(), "all bytes match")
	require.Equal(t, s.String(), s.FindFirstNotFunc(nil).String(),
		"nil pred never matches, so the first byte trivially fails it")
	require.True(t, Empty.FindFirstNotFunc(nil).IsEmpty())
	require.True(t, Invalid.FindFirstNotFunc(IsSpace).IsInvalid())
}

func TestFind(t *testing.T) {
	hay := FromString("hello world world")
	require.Equal(t, "world world", hay.Find(FromString("world")).String(),
		"suffix from the first match")
	require.Equal(t, "hello world world", hay.Find(Empty).String(),
		"empty needle matches at the start")
	require.True(t, hay.Find(FromString("worlds apart and then some")).IsEmpty(),
		"needle longer than haystack")
	require.True(t, hay.Find(FromString("banana")).IsEmpty())
	require.True(t, hay.Find(Invalid).IsInvalid())
	require.True(t, Invalid.Find(FromString("w")).IsInvalid())
	require.True(t, Empty.Find(Empty).IsEmpty())
}
