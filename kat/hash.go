package kat

// Hash returns the polynomial hash h = 31*h + byte over [0, count), cached
// under the hash-valid asset flag until the next mutation clears it.
func (c *Chain) Hash() uint32 {
	if c.asset&assetHashValid != 0 {
		return c.hash
	}
	var h uint32
	for i := 0; i < c.count; i++ {
		h = 31*h + uint32(c.value[i])
	}
	c.hash = h
	c.asset |= assetHashValid
	return h
}

// Equal reports whether two chains hold identical byte content.
func (c *Chain) Equal(other *Chain) bool {
	if c.count != other.count {
		return false
	}
	for i := 0; i < c.count; i++ {
		if c.value[i] != other.value[i] {
			return false
		}
	}
	return true
}

// EqualSeq reports whether the chain's bytes equal seq treated as unsigned
// code units, length-matched.
func (c *Chain) EqualSeq(seq CodeUnits) bool {
	if c.count != len(seq) {
		return false
	}
	for i := 0; i < c.count; i++ {
		if uint16(c.value[i]) != seq[i] {
			return false
		}
	}
	return true
}

// Compare orders the chain's bytes against seq as unsigned code units,
// tie-breaking on length last.
func (c *Chain) Compare(seq CodeUnits) int {
	n := c.count
	if len(seq) < n {
		n = len(seq)
	}
	for i := 0; i < n; i++ {
		a, b := uint16(c.value[i]), seq[i]
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case c.count < len(seq):
		return -1
	case c.count > len(seq):
		return 1
	default:
		return 0
	}
}
