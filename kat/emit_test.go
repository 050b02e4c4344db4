package kat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreame-maker/kat/kat"
)

func TestConcatIntRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 12345, -12345, 1<<63 - 1, -(1 << 63)}
	for _, v := range cases {
		c := kat.New()
		require.NoError(t, c.ConcatLong(v))
		got := c.ToLong(0)
		assert.Equal(t, v, got, "round trip for %d", v)
	}
}

func TestConcatBool(t *testing.T) {
	c := kat.New()
	require.NoError(t, c.ConcatBool(true))
	require.NoError(t, c.ConcatBool(false))
	assert.Equal(t, "truefalse", c.String())
}

func TestConcatFloat64(t *testing.T) {
	c := kat.New()
	require.NoError(t, c.ConcatFloat64(150.0))
	assert.Equal(t, 150.0, c.ToFloat64(0))
}
