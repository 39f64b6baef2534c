package nbt

// End is the sentinel variant (id 0x00) that terminates a Compound on
// the wire. It carries no name and no payload and encodes as the
// single type-id byte. Compound decode consumes it as a terminator and
// never stores it as a child; only at root level, where nothing is
// being terminated, does a decoded End survive as a Document tag so
// the buffer round-trips byte-exactly.
type End struct{}

func (*End) Type() TypeID    { return TypeEnd }
func (*End) TagName() string { return "" }

func (*End) appendPayload(dst []byte) ([]byte, error) {
	return dst, nil
}

func decodeEnd(*decoder, bool) (Tag, error) {
	// No name even in full-form position, and no payload bytes.
	return &End{}, nil
}
