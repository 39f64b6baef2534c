package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/internal/buf"
)

// List is a count-prefixed container of unnamed elements all sharing
// one variant (id 0x09). Elements are stored in wire order.
//
// An empty list has no meaningful element type: decode accepts any
// declared type id when the count is zero or negative, and encode
// always canonicalizes an empty list to element type End with count 0.
type List struct {
	Name  string
	Elems []Tag
}

func (t *List) Type() TypeID    { return TypeList }
func (t *List) TagName() string { return t.Name }

// ElemType returns the shared variant of the elements, or TypeEnd for
// an empty list.
func (t *List) ElemType() TypeID {
	if len(t.Elems) == 0 {
		return TypeEnd
	}
	return t.Elems[0].Type()
}

func (t *List) appendPayload(dst []byte) ([]byte, error) {
	if len(t.Elems) == 0 {
		dst = append(dst, byte(TypeEnd))
		return buf.AppendI32(dst, 0), nil
	}

	// Homogeneity is checked up front so a mixed list fails before any
	// list bytes are emitted.
	elem := t.Elems[0].Type()
	for i, e := range t.Elems {
		if e.Type() != elem {
			return nil, fmt.Errorf("list element %d is %s, list is %s: %w",
				i, e.Type(), elem, ErrHeterogeneousList)
		}
	}

	dst = append(dst, byte(elem))
	dst = buf.AppendI32(dst, int32(len(t.Elems)))
	for i, e := range t.Elems {
		var err error
		dst, err = e.appendPayload(dst)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
	}
	return dst, nil
}

// minPayloadSize is the smallest possible wire payload per variant, in
// bytes. Used to reject element counts that cannot possibly fit in the
// remaining buffer before decoding begins.
var minPayloadSize = [TypeLongArray + 1]int{
	TypeEnd:       0,
	TypeByte:      1,
	TypeShort:     2,
	TypeInt:       4,
	TypeLong:      8,
	TypeFloat:     4,
	TypeDouble:    8,
	TypeByteArray: 4,
	TypeString:    2,
	TypeList:      5,
	TypeCompound:  1,
	TypeIntArray:  4,
	TypeLongArray: 4,
}

func decodeList(d *decoder, named bool) (Tag, error) {
	name, err := d.readName(named)
	if err != nil {
		return nil, err
	}
	idb, err := d.cur.Read(1)
	if err != nil {
		return nil, fmt.Errorf("list element type: %w", err)
	}
	elem := TypeID(idb[0])

	lb, err := d.cur.Read(4)
	if err != nil {
		return nil, fmt.Errorf("list length: %w", err)
	}
	n := int(buf.I32BE(lb))
	if n <= 0 {
		// Zero or negative counts mean an empty list, and the declared
		// element type is deliberately not validated: real producers
		// emit assorted sentinel ids for empty lists.
		return &List{Name: name}, nil
	}

	// A positive count with an unregistered element type is a distinct
	// failure from the empty-list leniency above.
	fn, ok := lookup(elem)
	if !ok {
		return nil, fmt.Errorf("list element type 0x%02x: %w", uint8(elem), ErrUnsupportedType)
	}
	// End is a terminator, not list content. Its elements would consume
	// zero bytes each, so the count could not be bounds-checked.
	if elem == TypeEnd {
		return nil, fmt.Errorf("list of %d End elements: %w", n, ErrUnsupportedType)
	}
	if _, err := buf.CheckArrayBounds(d.cur.Remaining(), 0, n, minPayloadSize[elem]); err != nil {
		return nil, fmt.Errorf("list of %d %s elements: %w", n, elem, ErrOutOfBounds)
	}

	if err := d.enter(); err != nil {
		return nil, fmt.Errorf("list %q: %w", name, err)
	}
	defer d.leave()

	elems := make([]Tag, 0, n)
	for i := 0; i < n; i++ {
		e, err := fn(d, false)
		if err != nil {
			return nil, fmt.Errorf("list element %d: %w", i, err)
		}
		elems = append(elems, e)
	}
	return &List{Name: name, Elems: elems}, nil
}
