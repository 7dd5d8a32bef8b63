package baseenc

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBase32(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src  string
		want string
	}{
		{"", ""},
		{"MY======", "f"},
		{"MZXQ====", "fo"},
		{"MZXW6===", "foo"},
		{"MZXW6YQ=", "foob"},
		{"MZXW6YTB", "fooba"},
		{"MZXW6YTBOI======", "foobar"},
		{"MY", "f"}, // padding is optional on input
	}

	c := newBase32Codec()

	for _, tt := range tests {
		tt := tt
		t.Run(tt.src, func(t *testing.T) {
			t.Parallel()

			is := assert.New(t)

			got, err := c.DecodeString(tt.src, DecodeOpts{Strict: true})
			is.NoError(err)
			is.Equal(tt.want, string(got))
		})
	}
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	c := newBase32Codec()

	got, err := c.Decode(nil, DecodeOpts{Strict: true})
	is.NoError(err)
	is.Nil(got)

	// padding only strips down to nothing
	got, err = c.DecodeString("========", DecodeOpts{Strict: true})
	is.NoError(err)
	is.Nil(got)
}

func TestDecodeFoldCase(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	c := newBase32Codec()

	got, err := c.DecodeString("mzxw6ytb", DecodeOpts{FoldCase: true, Strict: true})
	is.NoError(err)
	is.Equal("fooba", string(got))

	// mixed case
	got, err = c.DecodeString("MzXw6yTb", DecodeOpts{FoldCase: true, Strict: true})
	is.NoError(err)
	is.Equal("fooba", string(got))

	// without folding, lowercase letters are unmapped
	_, err = c.DecodeString("mzxw6ytb", DecodeOpts{Strict: true})
	is.ErrorIs(err, ErrInvalidChar)
}

func TestDecodeFoldCaseEquivalence(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	c := newBase32Codec()

	enc := c.EncodeString("some payload worth folding")

	exact, err := c.DecodeString(enc, DecodeOpts{Strict: true})
	is.NoError(err)

	folded, err := c.DecodeString(strings.ToLower(enc), DecodeOpts{FoldCase: true, Strict: true})
	is.NoError(err)

	is.Equal(exact, folded)
}

func TestDecodeStrict(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	c := newBase32Codec()

	_, err := c.DecodeString("MZ XW", DecodeOpts{Strict: true})
	is.ErrorIs(err, ErrInvalidChar)

	_, err = c.DecodeString("M@Y", DecodeOpts{Strict: true})
	is.ErrorIs(err, ErrInvalidChar)

	// pad chars are only recognized as trailing padding
	_, err = c.DecodeString("M=Y=", DecodeOpts{Strict: true})
	is.ErrorIs(err, ErrInvalidChar)
}

func TestDecodeLenient(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	c := newBase32Codec()

	// unmapped characters are skipped, the rest still decodes
	got, err := c.DecodeString("M Z\nX-W 6 Y T B", DecodeOpts{})
	is.NoError(err)
	is.Equal("fooba", string(got))

	// nothing mappable at all
	got, err = c.DecodeString("!!??", DecodeOpts{})
	is.NoError(err)
	is.Nil(got)

	// an interior pad char is skipped like any other unmapped char
	got, err = c.DecodeString("M=Y=", DecodeOpts{})
	is.NoError(err)
	is.Equal("f", string(got))
}

func TestDecodeFinalBitsPolicy(t *testing.T) {
	t.Parallel()

	is := assert.New(t)

	asIs := New(Config{BitsPerChar: 5, Alphabet: b32Alphabet})

	// inverse of TestEncodeFinalBitsPolicy
	got, err := asIs.DecodeString("MG", DecodeOpts{Strict: true})
	is.NoError(err)
	is.Equal("f", string(got))
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	alpha := fullByteAlphabet()

	configs := []Config{
		{BitsPerChar: 5, Alphabet: b32Alphabet, RightPadFinalBits: true, PadFinalGroup: true, PadChar: "="},
		{BitsPerChar: 5, Alphabet: b32Alphabet},
		{BitsPerChar: 1, Alphabet: "01", RightPadFinalBits: true},
		{BitsPerChar: 2, Alphabet: "0123", PadFinalGroup: true, PadChar: "."},
		{BitsPerChar: 3, Alphabet: "01234567", RightPadFinalBits: true, PadFinalGroup: true},
		{BitsPerChar: 4, Alphabet: "0123456789abcdef"},
		{BitsPerChar: 6, Alphabet: defaultAlphabet, RightPadFinalBits: true},
		{BitsPerChar: 7, Alphabet: alpha[:128], PadChar: "\x80"},
		{BitsPerChar: 8, Alphabet: alpha, PadChar: "\x81"},
	}

	for _, cfg := range configs {
		c := New(cfg)

		t.Run(fmt.Sprintf("bits=%d,pad=%v", cfg.BitsPerChar, cfg.PadFinalGroup), func(t *testing.T) {
			t.Parallel()

			is := assert.New(t)
			is.False(c.Adjusted())

			for n := 0; n <= 48; n++ {
				src := make([]byte, n)
				for i := range src {
					src[i] = byte(i*31 + n*7 + 13)
				}

				got, err := c.Decode(c.Encode(src), DecodeOpts{Strict: true})
				is.NoError(err, "n=%d", n)
				if n == 0 {
					is.Nil(got)
					continue
				}
				is.Equal(src, got, "n=%d", n)
			}
		})
	}
}
