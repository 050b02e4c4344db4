// Package charset backs Chain.StringRange for charset tokens outside the
// chain's built-in UTF-8 and Latin-1 fast paths.
package charset

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/dreame-maker/kat/kat"
)

// registry maps a charset token to the x/text encoding that decodes it.
// UTF-8 and Latin-1/ISO-8859-1 are intentionally absent: the chain
// resolves those itself without allocating a decoder (see kat.StringRange).
var registry = map[string]encoding.Encoding{
	"Windows-1252": charmap.Windows1252,
	"CP1252":       charmap.Windows1252,
	"ISO-8859-15":  charmap.ISO8859_15,
	"KOI8-R":       charmap.KOI8R,
}

// Decode resolves charset against the registry and decodes b through it.
// It is meant to be passed as the decode callback to Chain.StringRange.
func Decode(charsetToken string, b []byte) (string, *kat.Error) {
	enc, ok := registry[charsetToken]
	if !ok {
		return "", kat.ErrUnsupportedCharset
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", &kat.Error{Kind: kat.ErrKindIO, Msg: "charset: decode failed", Err: err}
	}
	return string(out), nil
}

// Register adds or overrides a charset token's decoder. Call during
// program init to extend the registry beyond the built-in tokens.
func Register(token string, enc encoding.Encoding) {
	registry[token] = enc
}
