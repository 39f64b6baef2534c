package nbt

import "fmt"

// String is a 16-bit length-prefixed UTF-8 string (id 0x08). The
// length prefix is interpreted as signed on decode; see readString.
type String struct {
	Name  string
	Value string
}

func (t *String) Type() TypeID    { return TypeString }
func (t *String) TagName() string { return t.Name }

func (t *String) appendPayload(dst []byte) ([]byte, error) {
	out, err := appendString(dst, t.Value)
	if err != nil {
		return nil, fmt.Errorf("string payload: %w", err)
	}
	return out, nil
}

func decodeString(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	val, err := d.readString()
	if err != nil {
		return nil, fmt.Errorf("string payload: %w", err)
	}
	return &String{Name: name, Value: val}, nil
}
