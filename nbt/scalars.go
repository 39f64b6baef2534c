package nbt

import (
	"fmt"
	"math"

	"github.com/joshuapare/nbtkit/internal/buf"
)

// The six scalar variants. Each payload is a fixed-width big-endian
// value; decode and encode are exact inverses. Float and Double move
// raw IEEE-754 bit patterns through math.Float32bits/Float64bits so
// NaN payloads and signed zero survive a round trip untouched.

// Byte is a single signed byte (id 0x01).
type Byte struct {
	Name  string
	Value int8
}

func (t *Byte) Type() TypeID    { return TypeByte }
func (t *Byte) TagName() string { return t.Name }

func (t *Byte) appendPayload(dst []byte) ([]byte, error) {
	return append(dst, byte(t.Value)), nil
}

func decodeByte(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	b, err := d.cur.Read(1)
	if err != nil {
		return nil, fmt.Errorf("byte payload: %w", err)
	}
	return &Byte{Name: name, Value: int8(b[0])}, nil
}

// Short is a signed big-endian 16-bit integer (id 0x02).
type Short struct {
	Name  string
	Value int16
}

func (t *Short) Type() TypeID    { return TypeShort }
func (t *Short) TagName() string { return t.Name }

func (t *Short) appendPayload(dst []byte) ([]byte, error) {
	return buf.AppendI16(dst, t.Value), nil
}

func decodeShort(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	b, err := d.cur.Read(2)
	if err != nil {
		return nil, fmt.Errorf("short payload: %w", err)
	}
	return &Short{Name: name, Value: buf.I16BE(b)}, nil
}

// Int is a signed big-endian 32-bit integer (id 0x03).
type Int struct {
	Name  string
	Value int32
}

func (t *Int) Type() TypeID    { return TypeInt }
func (t *Int) TagName() string { return t.Name }

func (t *Int) appendPayload(dst []byte) ([]byte, error) {
	return buf.AppendI32(dst, t.Value), nil
}

func decodeInt(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	b, err := d.cur.Read(4)
	if err != nil {
		return nil, fmt.Errorf("int payload: %w", err)
	}
	return &Int{Name: name, Value: buf.I32BE(b)}, nil
}

// Long is a signed big-endian 64-bit integer (id 0x04).
type Long struct {
	Name  string
	Value int64
}

func (t *Long) Type() TypeID    { return TypeLong }
func (t *Long) TagName() string { return t.Name }

func (t *Long) appendPayload(dst []byte) ([]byte, error) {
	return buf.AppendI64(dst, t.Value), nil
}

func decodeLong(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	b, err := d.cur.Read(8)
	if err != nil {
		return nil, fmt.Errorf("long payload: %w", err)
	}
	return &Long{Name: name, Value: buf.I64BE(b)}, nil
}

// Float is a big-endian IEEE-754 single-precision value (id 0x05).
type Float struct {
	Name  string
	Value float32
}

func (t *Float) Type() TypeID    { return TypeFloat }
func (t *Float) TagName() string { return t.Name }

func (t *Float) appendPayload(dst []byte) ([]byte, error) {
	return buf.AppendU32(dst, math.Float32bits(t.Value)), nil
}

func decodeFloat(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	b, err := d.cur.Read(4)
	if err != nil {
		return nil, fmt.Errorf("float payload: %w", err)
	}
	return &Float{Name: name, Value: math.Float32frombits(buf.U32BE(b))}, nil
}

// Double is a big-endian IEEE-754 double-precision value (id 0x06).
type Double struct {
	Name  string
	Value float64
}

func (t *Double) Type() TypeID    { return TypeDouble }
func (t *Double) TagName() string { return t.Name }

func (t *Double) appendPayload(dst []byte) ([]byte, error) {
	return buf.AppendU64(dst, math.Float64bits(t.Value)), nil
}

func decodeDouble(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	b, err := d.cur.Read(8)
	if err != nil {
		return nil, fmt.Errorf("double payload: %w", err)
	}
	return &Double{Name: name, Value: math.Float64frombits(buf.U64BE(b))}, nil
}
