package uniuri

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	s := New()

	assert.Len(t, s, StdLen)
	assertCharset(t, s, StdChars)
}

func TestNewLenChars(t *testing.T) {
	testCases := []struct {
		name   string
		length int
		chars  []byte
	}{
		{name: "lower six", length: 6, chars: LowerChars},
		{name: "binary long", length: 1000, chars: []byte("01")},
		{name: "std one", length: 1, chars: StdChars},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s := NewLenChars(tc.length, tc.chars)

			assert.Len(t, s, tc.length)
			assertCharset(t, s, tc.chars)
		})
	}
}

func TestNewLenChars_Zero(t *testing.T) {
	assert.Empty(t, NewLenChars(0, LowerChars))
}

func TestNewLenChars_BadCharset(t *testing.T) {
	assert.Panics(t, func() {
		NewLenChars(4, []byte("a"))
	})
}

func TestNewLen_Distinct(t *testing.T) {
	seen := map[string]bool{}

	for range 100 {
		s := NewLen(StdLen)
		assert.False(t, seen[s], "duplicate %s", s)
		seen[s] = true
	}
}

func assertCharset(t *testing.T, s string, chars []byte) {
	t.Helper()

	for i := range len(s) {
		assert.True(t, bytes.IndexByte(chars, s[i]) >= 0, "unexpected char %q", s[i])
	}
}
