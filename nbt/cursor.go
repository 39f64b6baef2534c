package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/buf"
)

// Cursor is a bounds-checked, forward-only reader over an immutable
// byte slice. All reads are validated against the remaining buffer
// before the position advances; a failed read never partially advances.
type Cursor struct {
	data []byte
	pos  int
}

// NewCursor returns a cursor positioned at the start of data. The
// cursor never mutates data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Read returns the next n bytes and advances the position by n. It
// fails with ErrOutOfBounds when fewer than n bytes remain. The
// returned slice aliases the underlying buffer; callers that retain it
// must copy.
func (c *Cursor) Read(n int) ([]byte, error) {
	b, ok := buf.Slice(c.data, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("read %d bytes at offset %d of %d: %w",
			n, c.pos, len(c.data), ErrOutOfBounds)
	}
	c.pos += n
	return b, nil
}

// Peek returns the next n bytes without advancing. Same bounds rule
// as Read.
func (c *Cursor) Peek(n int) ([]byte, error) {
	b, ok := buf.Slice(c.data, c.pos, n)
	if !ok {
		return nil, fmt.Errorf("peek %d bytes at offset %d of %d: %w",
			n, c.pos, len(c.data), ErrOutOfBounds)
	}
	return b, nil
}

// HasMore reports whether any unread bytes remain.
func (c *Cursor) HasMore() bool {
	return c.pos < len(c.data)
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.pos
}
