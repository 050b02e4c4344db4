package kat

const hexUpper = "0123456789ABCDEF"
const hexLower = "0123456789abcdef"

// HexUpper returns the uppercase hex digit for a nibble (0..15).
func HexUpper(nibble byte) byte { return hexUpper[nibble&0xF] }

// HexLower returns the lowercase hex digit for a nibble (0..15).
func HexLower(nibble byte) byte { return hexLower[nibble&0xF] }

// AppendHexByte appends the two-digit uppercase hex form of b to dst.
func AppendHexByte(dst []byte, b byte) []byte {
	return append(dst, HexUpper(b>>4), HexUpper(b&0xF))
}

// AppendHexByteLower appends the two-digit lowercase hex form of b to dst.
func AppendHexByteLower(dst []byte, b byte) []byte {
	return append(dst, HexLower(b>>4), HexLower(b&0xF))
}

// Latin1View returns s viewed as a Latin-1 byte slice: each rune below
// U+0100 maps to its single byte; runes outside that range are clamped to
// '?', matching the chain's lenient replacement contract.
func Latin1View(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if r < 0x100 {
			out = append(out, byte(r))
		} else {
			out = append(out, '?')
		}
	}
	return out
}
