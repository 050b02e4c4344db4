// Package kat implements the byte-chain core of the KAT serialization
// framework: a mutable byte buffer used uniformly as parse token, emission
// buffer, and decoded value.
package kat

// Role distinguishes a Chain's intended use. The source specializes Chain
// into Value/Alias/Query through subclassing; this package instead keeps a
// single concrete type and tags it, dispatching role-specific behavior
// (terminator stripping for Alias, percent-encoding for Query) through free
// functions that read and write the base fields directly.
type Role uint8

const (
	RoleGeneric Role = iota
	RoleValue
	RoleAlias
	RoleQuery
)

const (
	assetHashValid     uint32 = 1 << 0
	assetStringCached  uint32 = 1 << 1
	assetFixed         uint32 = 1 << 31
	assetClearOnMutate        = assetHashValid | assetStringCached
)

// Bucket is a size-addressed byte-array pool contract. Apply is given the
// chain's current buffer, the number of live bytes in it, and a minimum
// capacity, and must return a replacement buffer of at least that capacity
// whose first used bytes equal old's. The caller must not touch old again.
type Bucket interface {
	Apply(old []byte, used, min int) []byte
}

// Chain is a growable byte container with UTF-8 aware comparisons, search,
// encoding and numeric projections. It is single-owner and not safe for
// concurrent mutation.
type Chain struct {
	value  []byte
	count  int
	hash   uint32
	asset  uint32
	backup string
	bucket Bucket
	role   Role
}

// New returns an empty, growable chain with no backing bucket.
func New() *Chain {
	return &Chain{}
}

// NewSize returns an empty chain pre-allocated to hold at least capacity
// bytes without growing.
func NewSize(capacity int) *Chain {
	if capacity < 0 {
		capacity = 0
	}
	return &Chain{value: make([]byte, capacity)}
}

// NewBytes wraps an existing byte slice as a chain's backing buffer. The
// slice is taken by reference, not copied; the chain's logical length is
// set to len(b).
func NewBytes(b []byte) *Chain {
	return &Chain{value: b, count: len(b)}
}

// NewString returns a chain containing the UTF-8 bytes of s.
func NewString(s string) *Chain {
	c := &Chain{value: make([]byte, len(s))}
	copy(c.value, s)
	c.count = len(s)
	return c
}

// NewChain copies another chain's live bytes and role into a new, unfixed
// chain. The bucket reference is not copied: the copy owns plain allocated
// memory until it is explicitly attached to a bucket.
func NewChain(src *Chain) *Chain {
	c := &Chain{value: make([]byte, src.count), role: src.role}
	copy(c.value, src.value[:src.count])
	c.count = src.count
	return c
}

// WithBucket attaches a Bucket that will supply replacement buffers on the
// next and all subsequent growth events.
func (c *Chain) WithBucket(b Bucket) *Chain {
	c.bucket = b
	return c
}

// WithRole sets the chain's role tag.
func (c *Chain) WithRole(r Role) *Chain {
	c.role = r
	return c
}

// Role reports the chain's role tag.
func (c *Chain) Role() Role { return c.role }

// Fix permanently marks the chain immutable. Every mutator called on a
// fixed chain returns a *Error with Kind ErrKindState instead of mutating.
func (c *Chain) Fix() *Chain {
	c.asset |= assetFixed
	return c
}

// IsFixed reports whether the chain has been permanently fixed.
func (c *Chain) IsFixed() bool {
	return c.asset&assetFixed != 0
}

// Len reports the chain's logical length in bytes.
func (c *Chain) Len() int { return c.count }

// Cap reports the chain's current backing capacity.
func (c *Chain) Cap() int { return len(c.value) }

// IsEmpty reports whether the chain has zero length.
func (c *Chain) IsEmpty() bool { return c.count == 0 }

// touch clears the lazy caches. Every mutator must call this before or
// after changing the live byte region, centralizing invariant 3 (hash-valid
// and string-cached are cleared on every structural change) in one place.
func (c *Chain) touch() {
	c.asset &^= assetClearOnMutate
}

// checkMutable returns a *Error if the chain is fixed, nil otherwise. Every
// mutating entry point calls this first.
func (c *Chain) checkMutable(op string) *Error {
	if c.IsFixed() {
		return stateError(op, c.count)
	}
	return nil
}

// grow ensures capacity for at least minCapacity bytes, delegating to the
// attached bucket if present, otherwise expanding geometrically by 1.5x
// clamped up to minCapacity. This is the single growth point; callers that
// append bytes must route every capacity increase through it.
func (c *Chain) grow(minCapacity int) {
	if len(c.value) >= minCapacity {
		return
	}
	if c.bucket != nil {
		c.value = c.bucket.Apply(c.value, c.count, minCapacity)
		return
	}
	next := len(c.value) + len(c.value)/2
	if next < minCapacity {
		next = minCapacity
	}
	replacement := make([]byte, next)
	copy(replacement, c.value[:c.count])
	c.value = replacement
}

// reset clears the chain back to an empty, unfixed state without releasing
// its buffer, so the same backing array can be reused by a pool.
func (c *Chain) reset() {
	c.count = 0
	c.hash = 0
	c.asset = 0
	c.backup = ""
}

// TakeBuffer clears the chain to an empty, unattached state and returns its
// former backing buffer to the caller (a Bucket implementation reclaiming
// it for reuse). The chain must not be used again after this call except
// through a fresh construction.
func (c *Chain) TakeBuffer() []byte {
	buf := c.value
	c.value = nil
	c.bucket = nil
	c.reset()
	return buf
}
