package kat

import "math/big"

// ToInt parses the full chain as a base-10 signed int32, returning def on
// failure.
func (c *Chain) ToInt(def int32) int32 {
	return ParseInt32(c.value[:c.count], 10, def)
}

// ToIntRadix parses the full chain as a signed int32 in the given radix.
func (c *Chain) ToIntRadix(def int32, radix int) int32 {
	return ParseInt32(c.value[:c.count], radix, def)
}

// ToLong parses the full chain as a base-10 signed int64, returning def on
// failure.
func (c *Chain) ToLong(def int64) int64 {
	return ParseInt64(c.value[:c.count], 10, def)
}

// ToLongRadix parses the full chain as a signed int64 in the given radix.
func (c *Chain) ToLongRadix(def int64, radix int) int64 {
	return ParseInt64(c.value[:c.count], radix, def)
}

// ToFloat32 parses the full chain as a decimal real.
func (c *Chain) ToFloat32(def float32) float32 {
	return ParseFloat32(c.value[:c.count], def)
}

// ToFloat64 parses the full chain as a decimal real.
func (c *Chain) ToFloat64(def float64) float64 {
	return ParseFloat64(c.value[:c.count], def)
}

// ToBool parses the full chain as a boolean.
func (c *Chain) ToBool(def bool) bool {
	return ParseBool(c.value[:c.count], def)
}

// ToNumber parses the full chain as the narrowest numeric type that fits.
func (c *Chain) ToNumber(def Number) Number {
	return ParseNumber(c.value[:c.count], def)
}

// ToChar decodes the full chain as a single UTF-8 code point.
func (c *Chain) ToChar(def rune) rune {
	return ParseChar(c.value[:c.count], def)
}

// ToBigInt parses the full chain as an arbitrary-precision integer.
func (c *Chain) ToBigInt(def *big.Int) *big.Int {
	return ParseBigInt(c.value[:c.count], def)
}

// ToBigFloat parses the full chain as an arbitrary-precision decimal.
func (c *Chain) ToBigFloat(def *big.Float) *big.Float {
	return ParseBigFloat(c.value[:c.count], def)
}
