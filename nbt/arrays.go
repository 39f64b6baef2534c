package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/buf"
)

// The three array variants. Each payload is a signed 32-bit element
// count followed by that many raw fixed-width values. Elements are
// bare numerics, never tags: array decoding does not touch the
// dispatch table. A negative count is a decode error, not an empty
// array, and nothing past the count is consumed when it is rejected.

// readArrayCount reads and validates an array length prefix, then
// checks that count elements of elemSize bytes actually fit in the
// remaining buffer before any element is read.
func readArrayCount(d *decoder, elemSize int) (int, error) {
	lb, err := d.cur.Read(4)
	if err != nil {
		return 0, fmt.Errorf("array length: %w", err)
	}
	n := int(buf.I32BE(lb))
	if n < 0 {
		return 0, fmt.Errorf("array length %d: %w", n, ErrNegativeLength)
	}
	if _, err := buf.CheckArrayBounds(d.cur.Remaining(), 0, n, elemSize); err != nil {
		return 0, fmt.Errorf("array of %d elements: %w", n, ErrOutOfBounds)
	}
	return n, nil
}

// ByteArray is a length-prefixed array of signed bytes (id 0x07).
type ByteArray struct {
	Name   string
	Values []int8
}

func (t *ByteArray) Type() TypeID    { return TypeByteArray }
func (t *ByteArray) TagName() string { return t.Name }

func (t *ByteArray) appendPayload(dst []byte) ([]byte, error) {
	dst = buf.AppendI32(dst, int32(len(t.Values)))
	for _, v := range t.Values {
		dst = append(dst, byte(v))
	}
	return dst, nil
}

func decodeByteArray(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	n, err := readArrayCount(d, 1)
	if err != nil {
		return nil, fmt.Errorf("byte array: %w", err)
	}
	raw, err := d.cur.Read(n)
	if err != nil {
		return nil, fmt.Errorf("byte array elements: %w", err)
	}
	vals := make([]int8, n)
	for i, b := range raw {
		vals[i] = int8(b)
	}
	return &ByteArray{Name: name, Values: vals}, nil
}

// IntArray is a length-prefixed array of signed big-endian 32-bit
// integers (id 0x0b).
type IntArray struct {
	Name   string
	Values []int32
}

func (t *IntArray) Type() TypeID    { return TypeIntArray }
func (t *IntArray) TagName() string { return t.Name }

func (t *IntArray) appendPayload(dst []byte) ([]byte, error) {
	dst = buf.AppendI32(dst, int32(len(t.Values)))
	for _, v := range t.Values {
		dst = buf.AppendI32(dst, v)
	}
	return dst, nil
}

func decodeIntArray(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	n, err := readArrayCount(d, 4)
	if err != nil {
		return nil, fmt.Errorf("int array: %w", err)
	}
	raw, err := d.cur.Read(n * 4)
	if err != nil {
		return nil, fmt.Errorf("int array elements: %w", err)
	}
	vals := make([]int32, n)
	for i := range vals {
		vals[i] = buf.I32BE(raw[i*4:])
	}
	return &IntArray{Name: name, Values: vals}, nil
}

// LongArray is a length-prefixed array of signed big-endian 64-bit
// integers (id 0x0c).
type LongArray struct {
	Name   string
	Values []int64
}

func (t *LongArray) Type() TypeID    { return TypeLongArray }
func (t *LongArray) TagName() string { return t.Name }

func (t *LongArray) appendPayload(dst []byte) ([]byte, error) {
	dst = buf.AppendI32(dst, int32(len(t.Values)))
	for _, v := range t.Values {
		dst = buf.AppendI64(dst, v)
	}
	return dst, nil
}

func decodeLongArray(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	n, err := readArrayCount(d, 8)
	if err != nil {
		return nil, fmt.Errorf("long array: %w", err)
	}
	raw, err := d.cur.Read(n * 8)
	if err != nil {
		return nil, fmt.Errorf("long array elements: %w", err)
	}
	vals := make([]int64, n)
	for i := range vals {
		vals[i] = buf.I64BE(raw[i*8:])
	}
	return &LongArray{Name: name, Values: vals}, nil
}
