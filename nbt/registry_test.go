package nbt

import (
	"errors"
	"testing"
)

func TestRegistryCoversAllVariants(t *testing.T) {
	for id := TypeEnd; id <= TypeLongArray; id++ {
		fn, ok := lookup(id)
		if !ok || fn == nil {
			t.Fatalf("no decode routine registered for %s (0x%02x)", id, uint8(id))
		}
	}
}

func TestRegistryRejectsOutOfRangeIDs(t *testing.T) {
	for _, id := range []TypeID{0x0d, 0x20, 0xff} {
		if _, ok := lookup(id); ok {
			t.Fatalf("lookup(0x%02x) should fail", uint8(id))
		}
	}
}

func TestRegistryDrivesContainerRecursion(t *testing.T) {
	// Compound containing a List of Compounds: every level resolves its
	// children through the dispatch table.
	wire := []byte{
		0x0a, 0x00, 0x01, 'c', // TAG_Compound "c"
		0x09, 0x00, 0x01, 'l', // TAG_List "l"
		0x0a,                   // element type TAG_Compound
		0x00, 0x00, 0x00, 0x01, // one element
		0x01, 0x00, 0x01, 'b', 0x07, // TAG_Byte "b" = 7
		0x00, // End of list element compound
		0x00, // End of outer compound
	}
	doc, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	list := doc.Tags[0].(*Compound).Children[0].(*List)
	if list.ElemType() != TypeCompound {
		t.Fatalf("elem type = %v", list.ElemType())
	}
	b := list.Elems[0].(*Compound).Children[0].(*Byte)
	if b.Name != "b" || b.Value != 7 {
		t.Fatalf("inner child = %+v", b)
	}
	if _, err := Decode([]byte{0x0d}); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("unregistered id err = %v, want ErrUnsupportedType", err)
	}
}
