package nbt

// decodeFunc decodes one tag of a fixed variant from the decoder's
// cursor. The type-id byte has already been consumed. When named is
// false the tag is in list element form and carries no name field.
type decodeFunc func(d *decoder, named bool) (Tag, error)

// registry is the process-wide dispatch table from type id to decode
// routine. It is immutable after initialization; there is no runtime
// registration. List and Compound never hard-code sibling variant
// logic; every recursive decode passes through lookup.
//
// The table is populated in init rather than in the declaration: the
// container decoders reach back through lookup into the table, and a
// composite-literal initializer would make that reference an
// initialization cycle.
var registry [TypeLongArray + 1]decodeFunc

func init() {
	registry = [TypeLongArray + 1]decodeFunc{
		TypeEnd:       decodeEnd,
		TypeByte:      decodeByte,
		TypeShort:     decodeShort,
		TypeInt:       decodeInt,
		TypeLong:      decodeLong,
		TypeFloat:     decodeFloat,
		TypeDouble:    decodeDouble,
		TypeByteArray: decodeByteArray,
		TypeString:    decodeString,
		TypeList:      decodeList,
		TypeCompound:  decodeCompound,
		TypeIntArray:  decodeIntArray,
		TypeLongArray: decodeLongArray,
	}
}

// lookup resolves a type id to its decode routine. ok is false for ids
// outside the registered range.
func lookup(id TypeID) (decodeFunc, bool) {
	if int(id) >= len(registry) {
		return nil, false
	}
	fn := registry[id]
	return fn, fn != nil
}
