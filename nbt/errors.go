package nbt

import "errors"

// Every failure surfaced by the codec wraps exactly one of these
// sentinels, so callers can branch with errors.Is. All of them are
// fatal to the current decode or encode: a length-prefixed format has
// no way to resynchronize after a structural error.
var (
	// ErrOutOfBounds indicates a read past the end of the buffer.
	ErrOutOfBounds = errors.New("nbt: read out of bounds")
	// ErrUnsupportedType indicates a type id with no registered variant.
	ErrUnsupportedType = errors.New("nbt: unsupported tag type")
	// ErrNegativeLength indicates a negative array or string length prefix.
	ErrNegativeLength = errors.New("nbt: negative length prefix")
	// ErrHeterogeneousList indicates list elements of differing variants
	// at encode time.
	ErrHeterogeneousList = errors.New("nbt: list elements must share one type")
	// ErrInvalidUTF8 indicates a string or name field that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("nbt: invalid UTF-8 in string")
	// ErrTooDeep indicates container nesting beyond MaxDepth.
	ErrTooDeep = errors.New("nbt: nesting exceeds depth limit")
	// ErrStringTooLong indicates a string or name longer than MaxStringLen
	// at encode time.
	ErrStringTooLong = errors.New("nbt: string exceeds length limit")
)
