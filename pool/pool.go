// Package pool provides a sync.Pool-backed Bucket implementation for
// reusing chain backing buffers across parse/emit cycles.
package pool

import (
	"sync"

	"github.com/dreame-maker/kat/kat"
)

// Pool is a concrete, size-classed Bucket: buffers are recycled through a
// small number of sync.Pool free lists keyed by capacity class, following
// the acquire/reset/release idiom of a narrow index pool rather than
// tracking every distinct size exactly.
type Pool struct {
	classes []sync.Pool // classes[i] holds buffers of size classSize(i)
	once    sync.Once
}

const (
	minClassSize = 64
	numClasses   = 20 // covers 64 bytes .. 64*2^19 (~32MB)
)

func classSize(class int) int {
	return minClassSize << class
}

func classFor(min int) int {
	size := minClassSize
	class := 0
	for size < min && class < numClasses-1 {
		size <<= 1
		class++
	}
	return class
}

func (p *Pool) init() {
	p.once.Do(func() {
		p.classes = make([]sync.Pool, numClasses)
	})
}

// Apply implements kat.Bucket: it returns a buffer from the smallest free
// list whose class covers min, copying over the first used bytes of old,
// and returns old's buffer (if it came from this pool) to its own class.
func (p *Pool) Apply(old []byte, used, min int) []byte {
	p.init()
	class := classFor(min)
	var next []byte
	if classSize(class) < min {
		// min exceeds the top class: no free list can satisfy the Bucket
		// contract of size >= min, so allocate exactly what's needed.
		next = make([]byte, min)
	} else if v := p.classes[class].Get(); v != nil {
		next = v.([]byte)
	} else {
		next = make([]byte, classSize(class))
	}
	copy(next, old[:used])
	if oldClass := classFor(len(old)); len(old) > 0 && classSize(oldClass) == len(old) {
		p.classes[oldClass].Put(old) //nolint:staticcheck // reusing backing array by design
	}
	return next
}

// AcquireChain returns a chain whose growth is backed by this pool.
func AcquireChain(p *Pool) *kat.Chain {
	return kat.New().WithBucket(p)
}

// ReleaseChain resets c to an empty state and returns its buffer to p's
// free lists for reuse by a future AcquireChain/grow. c must not be used
// again after release.
func ReleaseChain(p *Pool, c *kat.Chain) {
	if c == nil {
		return
	}
	p.init()
	buf := c.TakeBuffer()
	if len(buf) == 0 {
		return
	}
	class := classFor(len(buf))
	if classSize(class) == len(buf) {
		p.classes[class].Put(buf) //nolint:staticcheck // intentional slice reuse
	}
}
