package kat

import "strconv"

// ConcatInt appends the base-10 ASCII digits of value, sign included.
func (c *Chain) ConcatInt(value int32) *Error {
	return c.concatSigned(int64(value))
}

// ConcatLong appends the base-10 ASCII digits of value, sign included.
func (c *Chain) ConcatLong(value int64) *Error {
	return c.concatSigned(value)
}

// concatSigned emits digits least-significant-first, then reverses the
// newly appended range. Negative values peel digits off the negated
// remainder directly rather than negating value up front, so the minimum
// representable value never overflows.
func (c *Chain) concatSigned(value int64) *Error {
	if err := c.checkMutable("ConcatInt"); err != nil {
		return err
	}
	if value == 0 {
		return c.ConcatByte('0')
	}
	neg := value < 0
	mark := c.count
	if neg {
		// value may be the minimum representable int64, whose positive
		// negation overflows; peel digits off the negative value itself
		// using the negated remainder, which never overflows.
		for value != 0 {
			digit := byte('0' - byte(value%10))
			if err := c.ConcatByte(digit); err != nil {
				return err
			}
			value /= 10
		}
		if err := c.ConcatByte('-'); err != nil {
			return err
		}
	} else {
		for value != 0 {
			digit := byte('0' + value%10)
			if err := c.ConcatByte(digit); err != nil {
				return err
			}
			value /= 10
		}
	}
	c.swop(mark, c.count-mark)
	return nil
}

// ConcatBool appends the literal "true" or "false".
func (c *Chain) ConcatBool(value bool) *Error {
	if value {
		return c.Concat("true")
	}
	return c.Concat("false")
}

// ConcatFloat32 appends value formatted by the platform's canonical
// numeric-to-string function (strconv, shortest round-tripping form).
func (c *Chain) ConcatFloat32(value float32) *Error {
	return c.Concat(strconv.FormatFloat(float64(value), 'g', -1, 32))
}

// ConcatFloat64 appends value formatted by the platform's canonical
// numeric-to-string function.
func (c *Chain) ConcatFloat64(value float64) *Error {
	return c.Concat(strconv.FormatFloat(value, 'g', -1, 64))
}
