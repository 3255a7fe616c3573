package scdump

import "encoding/binary"

// Cursor is a positioned, bounded reader over an in-memory byte slice. It
// borrows the slice and never allocates; remaining length is always derived
// from (len(buf) - pos), never stored separately, so it cannot drift out of
// sync with pos.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf in a Cursor starting at position 0.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current absolute position.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the number of bytes remaining.
func (c *Cursor) Len() int { return len(c.buf) - c.pos }

// Bytes returns the full backing slice (not just the remainder).
func (c *Cursor) Bytes() []byte { return c.buf }

// Read returns the next n bytes and advances the cursor. The returned slice
// aliases the backing buffer; callers that need to retain it across further
// reads should copy.
func (c *Cursor) Read(n int) ([]byte, error) {
	if n < 0 || n > c.Len() {
		return nil, ErrTruncatedInput
	}
	b := c.buf[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Skip advances the cursor by n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	_, err := c.Read(n)
	return err
}

// U8 reads one unsigned byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16LE reads a little-endian 16-bit unsigned integer.
func (c *Cursor) U16LE() (uint16, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U16BE reads a big-endian 16-bit unsigned integer.
func (c *Cursor) U16BE() (uint16, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

// U32LE reads a little-endian 32-bit unsigned integer.
func (c *Cursor) U32LE() (uint32, error) {
	b, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// U32BE reads a big-endian 32-bit unsigned integer.
func (c *Cursor) U32BE() (uint32, error) {
	b, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// I32LE reads a little-endian 32-bit signed integer.
func (c *Cursor) I32LE() (int32, error) {
	v, err := c.U32LE()
	if err != nil {
		return 0, err
	}
	return int32(v), nil //nolint:gosec // explicit bit-pattern reinterpretation
}

// U64LE reads a little-endian 64-bit unsigned integer.
func (c *Cursor) U64LE() (uint64, error) {
	b, err := c.Read(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// LengthPrefixedString reads a 1-byte unsigned length followed by that many
// bytes, interpreted as UTF-8.
func (c *Cursor) LengthPrefixedString() (string, error) {
	n, err := c.U8()
	if err != nil {
		return "", err
	}
	b, err := c.Read(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Align advances the cursor to the next multiple of alignment (alignment must
// be a power of two); a cursor already on the boundary is not advanced.
func (c *Cursor) Align(alignment int) error {
	rem := c.pos % alignment
	if rem == 0 {
		return nil
	}
	return c.Skip(alignment - rem)
}
