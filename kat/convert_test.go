package kat_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dreame-maker/kat/kat"
)

func TestToIntDefaultsAndRadix(t *testing.T) {
	c := kat.NewString("-12345")
	assert.Equal(t, int32(-12345), c.ToInt(0))
	assert.Equal(t, int32(-12345), c.ToIntRadix(0, 10))
	assert.Equal(t, int32(0), c.ToIntRadix(0, 37))
}

func TestToFloat64(t *testing.T) {
	c := kat.NewString("1.5e2")
	assert.Equal(t, 150.0, c.ToFloat64(0))
}

func TestToBool(t *testing.T) {
	assert.True(t, kat.NewString("true").ToBool(false))
	assert.True(t, kat.NewString("TRUE").ToBool(false))
	assert.True(t, kat.NewString("1").ToBool(false))
	assert.False(t, kat.NewString("false").ToBool(true))
	assert.False(t, kat.NewString("0").ToBool(true))
	assert.True(t, kat.NewString("nonsense").ToBool(true))
}

func TestToNumberPrecedence(t *testing.T) {
	n := kat.NewString("42").ToNumber(kat.Number{})
	assert.Equal(t, kat.NumberInt32, n.Kind)
	assert.Equal(t, int32(42), n.Int32)

	n = kat.NewString("4294967296").ToNumber(kat.Number{})
	assert.Equal(t, kat.NumberInt64, n.Kind)
	assert.Equal(t, int64(4294967296), n.Int64)

	n = kat.NewString("3.14").ToNumber(kat.Number{})
	assert.Equal(t, kat.NumberFloat64, n.Kind)
	assert.Equal(t, 3.14, n.Float64)
}

func TestToCharSingleCodePoint(t *testing.T) {
	assert.Equal(t, '中', kat.NewString("中").ToChar('?'))
	assert.Equal(t, '?', kat.NewString("ab").ToChar('?'))
	assert.Equal(t, '?', kat.NewString("").ToChar('?'))
}

func TestToBigIntFallsBackOnOverflow(t *testing.T) {
	n := kat.NewString("99999999999999999999999999").ToBigInt(nil)
	assert.NotNil(t, n)
	assert.Equal(t, "99999999999999999999999999", n.String())
}

func TestToBigIntPreservesPrecisionPastInt64WrapBoundary(t *testing.T) {
	// This magnitude is just past int64's range in a way that wraps back
	// into a positive, in-range-looking value under a naive post-multiply
	// overflow check; it must still escape to the full-precision path.
	n := kat.NewString("20500000000000000000").ToBigInt(nil)
	assert.NotNil(t, n)
	assert.Equal(t, "20500000000000000000", n.String())
}

func TestParseInt64RejectsWrappingOverflow(t *testing.T) {
	const def = int64(-1)
	assert.Equal(t, def, kat.ParseInt64([]byte("20500000000000000000"), 10, def))
}

func TestParseInt64ParsesMinInt64(t *testing.T) {
	const def = int64(-1)
	assert.Equal(t, int64(math.MinInt64), kat.ParseInt64([]byte("-9223372036854775808"), 10, def))
}

func TestParseInt64RejectsMagnitudeOneBeyondMinInt64(t *testing.T) {
	const def = int64(-1)
	assert.Equal(t, def, kat.ParseInt64([]byte("-9223372036854775809"), 10, def))
}

func TestParseInt64ParsesMaxInt64(t *testing.T) {
	const def = int64(-1)
	assert.Equal(t, int64(math.MaxInt64), kat.ParseInt64([]byte("9223372036854775807"), 10, def))
}

func TestParseInt64RejectsMagnitudeOneBeyondMaxInt64(t *testing.T) {
	const def = int64(-1)
	assert.Equal(t, def, kat.ParseInt64([]byte("9223372036854775808"), 10, def))
}
