package nbt

import (
	"fmt"
	"unicode/utf8"

	"github.com/joshuapare/nbtkit/internal/buf"
)

// Tag is one node of the tag tree: a typed, optionally-named unit of
// data. The variant set is closed; only the concrete types in this
// package implement it.
//
// Tags are plain structs with exported fields. Mutate fields directly
// when building a tree by hand; re-encode afterwards. A tree produced
// by Decode owns all of its descendants exclusively (no sharing, no
// cycles).
type Tag interface {
	// Type returns the one-byte wire type id of the variant.
	Type() TypeID

	// TagName returns the tag's name. Unnamed tags (list elements)
	// return the empty string.
	TagName() string

	// appendPayload appends the payload-only wire encoding of the tag
	// to dst. It also seals the interface to this package.
	appendPayload(dst []byte) ([]byte, error)
}

// decoder carries the cursor and the container nesting depth through a
// single Decode call. It is never shared across calls.
type decoder struct {
	cur   *Cursor
	depth int
}

// decodeTag is the single junction point for all tag decoding: it reads
// one type-id byte, resolves the variant's decode routine from the
// registry, and delegates. Containers recurse back through here.
// When named is false the name field is absent from the wire (list
// element form).
func (d *decoder) decodeTag(named bool) (Tag, error) {
	idb, err := d.cur.Read(1)
	if err != nil {
		return nil, fmt.Errorf("tag type id: %w", err)
	}
	id := TypeID(idb[0])
	fn, ok := lookup(id)
	if !ok {
		// Nothing past the id byte is consumed for an unknown type.
		return nil, fmt.Errorf("tag type 0x%02x at offset %d: %w",
			uint8(id), d.cur.Pos()-1, ErrUnsupportedType)
	}
	return fn(d, named)
}

// enter tracks one level of container nesting. The matching leave call
// must run after the container's children are decoded.
func (d *decoder) enter() error {
	d.depth++
	if d.depth > MaxDepth {
		return fmt.Errorf("containers nested %d deep: %w", d.depth, ErrTooDeep)
	}
	return nil
}

func (d *decoder) leave() {
	d.depth--
}

// readString reads a 16-bit length-prefixed UTF-8 string. The prefix
// is interpreted as signed, matching the historical decode behavior;
// a negative value is rejected rather than reinterpreted as unsigned.
func (d *decoder) readString() (string, error) {
	lb, err := d.cur.Read(2)
	if err != nil {
		return "", fmt.Errorf("string length: %w", err)
	}
	n := int(buf.I16BE(lb))
	if n < 0 {
		return "", fmt.Errorf("string length %d: %w", n, ErrNegativeLength)
	}
	raw, err := d.cur.Read(n)
	if err != nil {
		return "", fmt.Errorf("string bytes: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("string at offset %d: %w", d.cur.Pos()-n, ErrInvalidUTF8)
	}
	return string(raw), nil
}

// readName reads the tag name for full-form tags, or returns "" for
// list element form.
func (d *decoder) readName(named bool) (string, error) {
	if !named {
		return "", nil
	}
	name, err := d.readString()
	if err != nil {
		return "", fmt.Errorf("tag name: %w", err)
	}
	return name, nil
}

// appendString appends the 16-bit length-prefixed UTF-8 encoding of s.
func appendString(dst []byte, s string) ([]byte, error) {
	if len(s) > MaxStringLen {
		return nil, fmt.Errorf("string of %d bytes: %w", len(s), ErrStringTooLong)
	}
	if !utf8.ValidString(s) {
		return nil, fmt.Errorf("string %q: %w", s, ErrInvalidUTF8)
	}
	dst = buf.AppendI16(dst, int16(len(s)))
	return append(dst, s...), nil
}

// Encode returns the full wire encoding of a single tag: type id,
// 16-bit length-prefixed name (except End), then payload.
func Encode(t Tag) ([]byte, error) {
	return appendTag(nil, t)
}

func appendTag(dst []byte, t Tag) ([]byte, error) {
	dst = append(dst, byte(t.Type()))
	if t.Type() == TypeEnd {
		return dst, nil
	}
	dst, err := appendString(dst, t.TagName())
	if err != nil {
		return nil, fmt.Errorf("%s name: %w", t.Type(), err)
	}
	dst, err = t.appendPayload(dst)
	if err != nil {
		return nil, err
	}
	return dst, nil
}
