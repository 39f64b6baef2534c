package nbt

import "fmt"

// TypeID is the one-byte wire identifier of a tag variant.
type TypeID uint8

// The thirteen tag variants of the format. The numeric values are wire
// constants and must not change.
const (
	TypeEnd       TypeID = 0x00
	TypeByte      TypeID = 0x01
	TypeShort     TypeID = 0x02
	TypeInt       TypeID = 0x03
	TypeLong      TypeID = 0x04
	TypeFloat     TypeID = 0x05
	TypeDouble    TypeID = 0x06
	TypeByteArray TypeID = 0x07
	TypeString    TypeID = 0x08
	TypeList      TypeID = 0x09
	TypeCompound  TypeID = 0x0a
	TypeIntArray  TypeID = 0x0b
	TypeLongArray TypeID = 0x0c
)

// String returns the conventional display name of the variant, e.g.
// "TAG_Byte". Unknown ids render as "TAG_Unknown(0xNN)".
func (id TypeID) String() string {
	switch id {
	case TypeEnd:
		return "TAG_End"
	case TypeByte:
		return "TAG_Byte"
	case TypeShort:
		return "TAG_Short"
	case TypeInt:
		return "TAG_Int"
	case TypeLong:
		return "TAG_Long"
	case TypeFloat:
		return "TAG_Float"
	case TypeDouble:
		return "TAG_Double"
	case TypeByteArray:
		return "TAG_Byte_Array"
	case TypeString:
		return "TAG_String"
	case TypeList:
		return "TAG_List"
	case TypeCompound:
		return "TAG_Compound"
	case TypeIntArray:
		return "TAG_Int_Array"
	case TypeLongArray:
		return "TAG_Long_Array"
	default:
		return fmt.Sprintf("TAG_Unknown(0x%02x)", uint8(id))
	}
}

const (
	// MaxDepth bounds container nesting during decode. Wire data nested
	// deeper than this is treated as malformed rather than allowed to
	// exhaust the stack.
	MaxDepth = 512

	// MaxStringLen is the largest encodable string or name, in bytes.
	// The wire length prefix is a signed 16-bit value.
	MaxStringLen = 0x7fff
)
