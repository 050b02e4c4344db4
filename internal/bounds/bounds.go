// Package bounds provides overflow-safe offset/length arithmetic for the
// chain's boundary-crossing helpers (ToBytesRange, Update, NewReader, the
// UTF-16/UTF-8 append ranges). Plain offset+length comparisons can wrap
// around on extreme inputs; every check here goes through AddOverflowSafe
// first.
package bounds

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would
// overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// Has reports whether offset and length are both non-negative and
// offset+length fits within n without overflowing or exceeding it.
func Has(n, offset, length int) bool {
	if offset < 0 || length < 0 {
		return false
	}
	end, ok := AddOverflowSafe(offset, length)
	return ok && end <= n
}

// Slice returns b[off:off+length] if Has(len(b), off, length).
func Slice(b []byte, off, length int) ([]byte, bool) {
	if !Has(len(b), off, length) {
		return nil, false
	}
	return b[off : off+length], true
}
