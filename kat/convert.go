package kat

import (
	"math"
	"math/big"
	"strconv"
	"unicode/utf8"
)

// Convert primitives parse and format numeric and boolean values directly
// over raw byte ranges, without allocating an intermediate string and
// without ever panicking: every parser returns a tagged success/fallback,
// collapsed at the public API to "the parsed value, or the caller's
// default."

func isSign(b byte) bool { return b == '+' || b == '-' }

func digitValue(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'z':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'Z':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// minInt64Magnitude is the absolute value of math.MinInt64, one past what
// fits in a positive int64. The negative path accumulates magnitude up to
// this bound rather than math.MaxInt64, so the one extra representable
// negative value (the exact boundary the emitter in emit.go goes out of
// its way to format) can round-trip back through the parser.
const minInt64Magnitude = uint64(math.MaxInt64) + 1

// ParseInt64 parses a signed integer in the given radix (2..36) from b,
// returning def on empty input, overflow, an invalid byte, or a radix
// outside [2, 36]. Magnitude is accumulated as an unsigned value with a
// pre-multiply overflow guard, so overflow is caught before it wraps
// rather than detected after the fact by comparing against the prior
// accumulator.
func ParseInt64(b []byte, radix int, def int64) int64 {
	if radix < 2 || radix > 36 || len(b) == 0 {
		return def
	}
	i := 0
	neg := false
	if isSign(b[0]) {
		neg = b[0] == '-'
		i++
	}
	if i == len(b) {
		return def
	}
	r := uint64(radix)
	var mag uint64
	for ; i < len(b); i++ {
		d, ok := digitValue(b[i])
		if !ok || d >= radix {
			return def
		}
		if mag > (math.MaxUint64-uint64(d))/r {
			return def // overflow
		}
		mag = mag*r + uint64(d)
	}
	if neg {
		if mag > minInt64Magnitude {
			return def
		}
		if mag == minInt64Magnitude {
			return math.MinInt64
		}
		return -int64(mag)
	}
	if mag > uint64(math.MaxInt64) {
		return def
	}
	return int64(mag)
}

// ParseInt32 parses as ParseInt64 but rejects values outside int32 range.
func ParseInt32(b []byte, radix int, def int32) int32 {
	const sentinel = int64(1) << 62
	wide := ParseInt64(b, radix, sentinel)
	if wide == sentinel || wide < -1<<31 || wide > 1<<31-1 {
		return def
	}
	return int32(wide)
}

// ParseFloat64 parses a decimal real (including exponents) from b,
// returning def on failure.
func ParseFloat64(b []byte, def float64) float64 {
	f, ok := parseFloatBytes(b)
	if !ok {
		return def
	}
	return f
}

// ParseFloat32 narrows ParseFloat64's result to float32.
func ParseFloat32(b []byte, def float32) float32 {
	f, ok := parseFloatBytes(b)
	if !ok {
		return def
	}
	return float32(f)
}

func parseFloatBytes(b []byte) (float64, bool) {
	if len(b) == 0 {
		return 0, false
	}
	i := 0
	if isSign(b[0]) {
		i++
	}
	sawDigit := false
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
		sawDigit = true
	}
	if i < len(b) && b[i] == '.' {
		i++
		for i < len(b) && b[i] >= '0' && b[i] <= '9' {
			i++
			sawDigit = true
		}
	}
	if !sawDigit {
		return 0, false
	}
	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1
		if j < len(b) && isSign(b[j]) {
			j++
		}
		sawExpDigit := false
		for j < len(b) && b[j] >= '0' && b[j] <= '9' {
			j++
			sawExpDigit = true
		}
		if !sawExpDigit {
			return 0, false
		}
		i = j
	}
	if i != len(b) {
		return 0, false
	}
	f, err := strconv.ParseFloat(string(b), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseBool accepts case-insensitive "true"/"false" and single-digit
// '0'/'1'; anything else returns def.
func ParseBool(b []byte, def bool) bool {
	switch {
	case equalFoldASCII(b, "true") || (len(b) == 1 && b[0] == '1'):
		return true
	case equalFoldASCII(b, "false") || (len(b) == 1 && b[0] == '0'):
		return false
	default:
		return def
	}
}

func equalFoldASCII(b []byte, s string) bool {
	if len(b) != len(s) {
		return false
	}
	for i := range b {
		bc, sc := b[i], s[i]
		if bc >= 'A' && bc <= 'Z' {
			bc += 'a' - 'A'
		}
		if bc != sc {
			return false
		}
	}
	return true
}

// Number is the result of ParseNumber: the narrowest of int32/int64/float64
// that fits the input, tagged so callers can switch on it without a type
// assertion panic.
type Number struct {
	Int32   int32
	Int64   int64
	Float64 float64
	Kind    NumberKind
}

type NumberKind int

const (
	NumberInt32 NumberKind = iota
	NumberInt64
	NumberFloat64
)

// ParseNumber parses b as the narrowest of int32/int64/float64 that fits:
// a decimal point or exponent forces float64; otherwise a value fitting
// int32 is an int32, else int64. def is returned verbatim on failure.
func ParseNumber(b []byte, def Number) Number {
	hasDot, hasExp := false, false
	for _, ch := range b {
		if ch == '.' {
			hasDot = true
		}
		if ch == 'e' || ch == 'E' {
			hasExp = true
		}
	}
	if hasDot || hasExp {
		f, ok := parseFloatBytes(b)
		if !ok {
			return def
		}
		return Number{Float64: f, Kind: NumberFloat64}
	}
	const sentinel = int64(1) << 62
	n := ParseInt64(b, 10, sentinel)
	if n == sentinel && ParseInt64(b, 10, 0) != sentinel {
		return def
	}
	if n >= -1<<31 && n <= 1<<31-1 {
		return Number{Int32: int32(n), Kind: NumberInt32}
	}
	return Number{Int64: n, Kind: NumberInt64}
}

// ParseChar decodes b as a single UTF-8 code point, returning def if b is
// empty, malformed, or contains more than one code point.
func ParseChar(b []byte, def rune) rune {
	if len(b) == 0 {
		return def
	}
	r, width := utf8.DecodeRune(b)
	if (r == utf8.RuneError && width == 1) || width != len(b) {
		return def
	}
	return r
}

// ParseBigInt first attempts an int64 parse; on failure it treats b as
// Latin-1 text and parses it with math/big, falling back to def.
func ParseBigInt(b []byte, def *big.Int) *big.Int {
	const sentinel = int64(1) << 62
	if n := ParseInt64(b, 10, sentinel); n != sentinel {
		return big.NewInt(n)
	}
	n := new(big.Int)
	if _, ok := n.SetString(string(b), 10); !ok {
		return def
	}
	return n
}

// ParseBigFloat mirrors ParseBigInt for arbitrary-precision decimals.
func ParseBigFloat(b []byte, def *big.Float) *big.Float {
	const sentinel = int64(1) << 62
	if n := ParseInt64(b, 10, sentinel); n != sentinel {
		return new(big.Float).SetInt64(n)
	}
	n, _, err := big.ParseFloat(string(b), 10, 200, big.ToNearestEven)
	if err != nil {
		return def
	}
	return n
}
