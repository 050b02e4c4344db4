package charset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreame-maker/kat/kat"
	"github.com/dreame-maker/kat/charset"
)

func TestDecodeWindows1252(t *testing.T) {
	// 0x93/0x94 are curly quotes in Windows-1252, undefined in Latin-1.
	s, err := charset.Decode("Windows-1252", []byte{0x93, 'h', 'i', 0x94})
	require.Nil(t, err)
	assert.Equal(t, "“hi”", s)
}

func TestDecodeUnknownCharsetIsUnsupported(t *testing.T) {
	_, err := charset.Decode("EBCDIC", []byte{0x00})
	require.NotNil(t, err)
	assert.Equal(t, kat.ErrKindUnsupported, err.Kind)
}

func TestChainStringRangeRoutesThroughDecode(t *testing.T) {
	c := kat.NewBytes([]byte{0x93, 'h', 'i', 0x94})
	s, err := c.StringRange("Windows-1252", 0, 4, charset.Decode)
	require.Nil(t, err)
	assert.Equal(t, "“hi”", s)
}
