package kat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreame-maker/kat/kat"
)

func TestReaderCursor(t *testing.T) {
	c := kat.NewString("abc")
	r, err := kat.NewReader(c, 0, 3)
	require.NoError(t, err)

	var out []byte
	for r.Also() {
		out = append(out, r.Read())
	}
	assert.Equal(t, "abc", string(out))
}

func TestReaderNextCrashesAtEnd(t *testing.T) {
	c := kat.NewString("a")
	r, err := kat.NewReader(c, 0, 1)
	require.NoError(t, err)

	b, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, byte('a'), b)

	_, err = r.Next()
	require.Error(t, err)
	assert.Equal(t, kat.ErrKindEOS, err.Kind)
}

func TestReaderSlipAndClose(t *testing.T) {
	c := kat.NewString("abcdef")
	r, err := kat.NewReader(c, 0, 6)
	require.NoError(t, err)
	require.NoError(t, r.Slip(4))
	assert.Equal(t, byte('e'), r.Read())

	r.Close()
	assert.False(t, r.Also())
}

func TestNewReaderRejectsOutOfRange(t *testing.T) {
	c := kat.NewString("abc")
	_, err := kat.NewReader(c, 0, 10)
	require.Error(t, err)
	assert.Equal(t, kat.ErrKindBounds, err.Kind)
}
