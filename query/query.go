// Package query implements the URL/Query percent-encoding extension built
// atop the chain core: a typed append surface for key/value pairs that
// renders as a query string and decodes symmetrically back to a map.
package query

import (
	"io"
	"strings"

	"github.com/dreame-maker/kat/kat"
)

// unreserved is the RFC 3986 unreserved byte set kept literal in the
// percent-encoded output.
func unreserved(b byte) bool {
	switch {
	case b >= 'A' && b <= 'Z', b >= 'a' && b <= 'z', b >= '0' && b <= '9':
		return true
	case b == '.' || b == '_' || b == '-' || b == '*':
		return true
	default:
		return false
	}
}

// Query extends a chain with the offset of the byte immediately after the
// first '?', used to delimit the key/value region for ToMap.
type Query struct {
	*kat.Chain
	offset int // -1: none appended yet, 0: unknown/empty, >0: one past '?'
}

// New returns an empty query chain.
func New() *Query {
	return &Query{Chain: kat.New().WithRole(kat.RoleQuery), offset: -1}
}

// Set begins a new key/value pair: it prepends '&' if this isn't the first
// pair, or '?' (recording the offset) if it is, then percent-encodes key
// and appends '='.
func (q *Query) Set(key string) *Query {
	if q.Len() > 0 {
		_ = q.Chain.ConcatByte('&')
	} else {
		_ = q.Chain.ConcatByte('?')
		q.offset = q.Len()
	}
	q.appendEncoded(key)
	_ = q.Chain.ConcatByte('=')
	return q
}

// Add percent-encodes value and appends it to the current pair's value
// position.
func (q *Query) Add(value string) *Query {
	q.appendEncoded(value)
	return q
}

// AddRange is Add restricted to the substring value[i:i+l].
func (q *Query) AddRange(value string, i, l int) *Query {
	return q.Add(value[i : i+l])
}

// AddByte routes a single raw byte through the RFC 3986 encoding: emitted
// as-is if unreserved, '+' for space, otherwise '%HH' with uppercase hex.
func (q *Query) AddByte(b byte) {
	switch {
	case unreserved(b):
		_ = q.Chain.ConcatByte(b)
	case b == ' ':
		_ = q.Chain.ConcatByte('+')
	default:
		_ = q.Chain.ConcatByte('%')
		_ = q.Chain.ConcatByte(kat.HexUpper(b >> 4))
		_ = q.Chain.ConcatByte(kat.HexUpper(b & 0xF))
	}
}

func (q *Query) appendEncoded(s string) {
	for i := 0; i < len(s); i++ {
		q.AddByte(s[i])
	}
}

// ToMap walks the buffer starting at offset, splitting on '=' and '&',
// decoding percent-encoded bytes and '+' back to space.
func (q *Query) ToMap() map[string]string {
	out := map[string]string{}
	start := q.offset
	if start < 0 {
		start = 0
	}
	raw := q.String()
	if start > len(raw) {
		return out
	}
	body := raw[start:]
	if body == "" {
		return out
	}
	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		k, v, found := strings.Cut(pair, "=")
		key := decode(k)
		if !found {
			out[key] = ""
			continue
		}
		out[key] = decode(v)
	}
	return out
}

// decode is the symmetric inverse of AddByte: '+' -> space, '%HH' -> one
// raw byte, everything else passes through.
func decode(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '+':
			b.WriteByte(' ')
		case s[i] == '%' && i+2 < len(s):
			hi, okHi := hexVal(s[i+1])
			lo, okLo := hexVal(s[i+2])
			if okHi && okLo {
				b.WriteByte(byte(hi<<4 | lo))
				i += 2
			} else {
				b.WriteByte(s[i])
			}
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String()
}

func hexVal(b byte) (int, bool) {
	switch {
	case b >= '0' && b <= '9':
		return int(b - '0'), true
	case b >= 'a' && b <= 'f':
		return int(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return int(b-'A') + 10, true
	default:
		return 0, false
	}
}

// ToURL exports the full rendered buffer for the caller's IO layer.
func (q *Query) ToURL() string {
	return q.String()
}

// Client exports the full rendered buffer as an io.Reader, for callers that
// want to stream the query string (e.g. as an http.Request body) instead of
// taking the whole string at once.
func (q *Query) Client() io.Reader {
	return q.Chain.Reader()
}

// Parse appends an already-encoded query string (e.g. read off the wire)
// and locates its key/value region, so a subsequent ToMap call starts in
// the right place. A string with no '?' is treated as having no key/value
// prefix: ToMap then parses the whole thing.
func (q *Query) Parse(raw string) *kat.Error {
	if err := q.Chain.Concat(raw); err != nil {
		return err
	}
	if idx := q.Chain.IndexOfByte('?', 0); idx >= 0 {
		q.offset = idx + 1
	}
	return nil
}
