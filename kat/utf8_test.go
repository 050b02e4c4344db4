package kat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreame-maker/kat/kat"
)

func TestRoundTripBMPCodePoints(t *testing.T) {
	for r := rune(0); r < 0x10000; r += 37 {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		c := kat.New()
		require.NoError(t, c.ConcatChar(uint16(r)))
		runes := c.ToRunes()
		require.Len(t, runes, 1)
		assert.Equal(t, r, runes[0])
	}
}

func TestRoundTripAstral(t *testing.T) {
	c := kat.New()
	require.NoError(t, c.ConcatUTF16(kat.CodeUnits{0xD83D, 0xDE00}, 0, 2))
	assert.Equal(t, []byte{0xF0, 0x9F, 0x98, 0x80}, c.ToBytes())
	runes := c.ToRunes()
	require.Len(t, runes, 1)
	assert.Equal(t, rune(0x1F600), runes[0])
}

func TestLoneHighSurrogateEmitsReplacement(t *testing.T) {
	c := kat.New()
	require.NoError(t, c.ConcatChar(0xD83D))
	assert.Equal(t, "?", c.String())
}

func TestConcatUTF16LoneSurrogateInSequence(t *testing.T) {
	c := kat.New()
	require.NoError(t, c.ConcatUTF16(kat.CodeUnits{'a', 0xD83D, 'b'}, 0, 3))
	assert.Equal(t, "a?b", c.String())
}

func TestIsSeqMatchesDecodedChain(t *testing.T) {
	c := kat.NewString("中")
	assert.True(t, c.IsSeq(kat.CodeUnits{0x4E2D}))
	assert.False(t, c.IsSeq(kat.CodeUnits{0x4E2E}))
}
