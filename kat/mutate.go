package kat

import (
	"context"
	"io"
)

// ConcatStream reads up to n bytes from r and appends them, stopping early
// on io.EOF. n < 0 means read until EOF with no limit. The read honors ctx
// cancellation between chunks; on cancellation it returns ctx.Err() wrapped
// as an IO error, with whatever was already appended left in place.
func (c *Chain) ConcatStream(ctx context.Context, r io.Reader, n int) *Error {
	if err := c.checkMutable("ConcatStream"); err != nil {
		return err
	}
	const chunk = 4096
	buf := make([]byte, chunk)
	remaining := n
	for n < 0 || remaining > 0 {
		if err := ctx.Err(); err != nil {
			return &Error{Kind: ErrKindIO, Msg: "kat: ConcatStream: context canceled", Err: err}
		}
		want := chunk
		if n >= 0 && remaining < want {
			want = remaining
		}
		got, readErr := r.Read(buf[:want])
		if got > 0 {
			if err := c.ConcatBytes(buf, 0, got); err != nil {
				return err
			}
			if n >= 0 {
				remaining -= got
			}
		}
		if readErr != nil {
			if readErr == io.EOF {
				return nil
			}
			return &Error{Kind: ErrKindIO, Msg: "kat: ConcatStream: read failed", Err: readErr}
		}
		if got == 0 {
			return nil
		}
	}
	return nil
}

// ConcatByte appends a single byte.
func (c *Chain) ConcatByte(b byte) *Error {
	if err := c.checkMutable("ConcatByte"); err != nil {
		return err
	}
	c.grow(c.count + 1)
	c.value[c.count] = b
	c.count++
	c.touch()
	return nil
}

// ConcatBytes appends a byte range [i, i+l) from src.
func (c *Chain) ConcatBytes(src []byte, i, l int) *Error {
	if err := c.checkMutable("ConcatBytes"); err != nil {
		return err
	}
	if err := checkBounds("ConcatBytes", i, l, len(src)); err != nil {
		return err
	}
	c.grow(c.count + l)
	copy(c.value[c.count:], src[i:i+l])
	c.count += l
	c.touch()
	return nil
}

// Concat appends the UTF-8 bytes of a Go string, which is always
// well-formed UTF-8 by construction, so this never produces a '?' fallback.
func (c *Chain) Concat(s string) *Error {
	return c.ConcatBytes([]byte(s), 0, len(s))
}

// ConcatChain appends another chain's live bytes.
func (c *Chain) ConcatChain(other *Chain) *Error {
	return c.ConcatBytes(other.value, 0, other.count)
}

// swop reverses the byte range [mark, mark+n) in place. Used by the numeric
// emitters, which write digits least-significant-first and then reverse.
func (c *Chain) swop(mark, n int) {
	lo, hi := mark, mark+n-1
	for lo < hi {
		c.value[lo], c.value[hi] = c.value[hi], c.value[lo]
		lo++
		hi--
	}
}

// shift grows the buffer if needed and moves [at, count) right by n bytes,
// opening the now-empty gap [at, at+n) for the caller to fill. Callers must
// have already checked mutability and bounds.
func (c *Chain) shift(at, n int) {
	c.grow(c.count + n)
	copy(c.value[at+n:c.count+n], c.value[at:c.count])
	c.count += n
}

// Insert shifts the bytes at [at, count) right by len(src) and writes src
// into the freed gap, implementing the mutation contract's insert-shift
// operation at an arbitrary position rather than always at count.
func (c *Chain) Insert(at int, src []byte) *Error {
	if err := c.checkMutable("Insert"); err != nil {
		return err
	}
	if at < 0 || at > c.count {
		return boundsError("Insert", at, len(src), c.count)
	}
	c.shift(at, len(src))
	copy(c.value[at:at+len(src)], src)
	c.touch()
	return nil
}

// Clear truncates the chain to zero length without releasing its buffer.
func (c *Chain) Clear() *Error {
	if err := c.checkMutable("Clear"); err != nil {
		return err
	}
	c.count = 0
	c.touch()
	return nil
}
