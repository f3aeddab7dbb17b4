package wordcodec_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lexpath/wordcodec"
)

func TestEncode_Errors(t *testing.T) {
	_, err := wordcodec.Encode("")
	assert.ErrorIs(t, err, wordcodec.ErrEmptyWord)

	_, err = wordcodec.Encode("abcdefg")
	assert.ErrorIs(t, err, wordcodec.ErrTooLong)

	for _, bad := range []string{"abC", "ab1", "ab ", "äbc", "a-b"} {
		_, err = wordcodec.Encode(bad)
		assert.ErrorIs(t, err, wordcodec.ErrNonLetter, "input %q", bad)
	}
}

func TestEncode_RoundTrip(t *testing.T) {
	for _, s := range []string{"a", "ab", "abcde", "zzzzzz", "sick", "true", "oooooo"} {
		w, err := wordcodec.Encode(s)
		require.NoError(t, err)
		assert.Equal(t, s, w.String())
	}
}

// TestEncode_RoundTrip_Random covers the round-trip property on random
// words of every permitted length.
func TestEncode_RoundTrip_Random(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		n := 1 + rnd.Intn(wordcodec.MaxWordLen)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteByte(byte('a' + rnd.Intn(26)))
		}
		s := b.String()

		w, err := wordcodec.Encode(s)
		require.NoError(t, err)
		assert.Equal(t, s, w.String())
		assert.Equal(t, len(s), w.Len())
	}
}

func TestWord_Len(t *testing.T) {
	cases := map[string]int{
		"a":      1,
		"z":      1,
		"ab":     2,
		"abc":    3,
		"abcd":   4,
		"abcde":  5,
		"abcdef": 6,
		"zzzzzz": 6,
	}
	for s, want := range cases {
		assert.Equal(t, want, wordcodec.MustEncode(s).Len(), "Len(%q)", s)
	}
}

func TestWord_NeverZero(t *testing.T) {
	// "a" encodes to 1, the smallest valid Word; the zero value is reserved
	// for "no word".
	assert.Equal(t, wordcodec.Word(1), wordcodec.MustEncode("a"))
	assert.NotZero(t, wordcodec.MustEncode("zzzzzz"))
}

func TestMustEncode_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { wordcodec.MustEncode("") })
	assert.Panics(t, func() { wordcodec.MustEncode("UPPER") })
}
