// Package testutil holds small fixtures for the package test suites; the
// kat tests use it.
package testutil

import "github.com/dreame-maker/kat/kat"

// ASCIIRange returns the bytes 0x20..0x7E, the printable ASCII range, used
// to exercise the Latin-1 fast path over a realistic spread of single-byte
// content.
func ASCIIRange() []byte {
	out := make([]byte, 0, 0x7E-0x20+1)
	for b := byte(0x20); b <= 0x7E; b++ {
		out = append(out, b)
	}
	return out
}

// BuildChain is a small helper for constructing a chain from a string in
// table-driven tests without repeating the New/Concat/require dance.
func BuildChain(s string) *kat.Chain {
	c := kat.New()
	if err := c.Concat(s); err != nil {
		panic(err)
	}
	return c
}
