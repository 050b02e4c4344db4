package kat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreame-maker/kat/kat"
)

func TestHashStableAcrossEqualContent(t *testing.T) {
	a := kat.NewString("hello")
	b := kat.NewString("hello")
	assert.Equal(t, a.Hash(), b.Hash())
}

func TestHashRecomputesAfterMutation(t *testing.T) {
	a := kat.NewString("hello")
	_ = a.Hash()
	require.NoError(t, a.Concat("!"))
	fresh := kat.NewString("hello!")
	assert.Equal(t, fresh.Hash(), a.Hash())
}

func TestEqualAndCompare(t *testing.T) {
	a := kat.NewString("abc")
	b := kat.NewString("abc")
	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(kat.CodeUnits{'a', 'b', 'c'}))
	assert.Equal(t, -1, a.Compare(kat.CodeUnits{'a', 'b', 'd'}))
	assert.Equal(t, -1, a.Compare(kat.CodeUnits{'a', 'b', 'c', 'd'}))
}
