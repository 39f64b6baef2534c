package nbt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestStringRoundTrip(t *testing.T) {
	wire := []byte{
		0x08, 0x00, 0x04, 'n', 'a', 'm', 'e',
		0x00, 0x05, 'h', 'e', 'l', 'l', 'o',
	}
	doc, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	s := doc.Tags[0].(*String)
	if s.Name != "name" || s.Value != "hello" {
		t.Fatalf("decoded %+v", s)
	}
	out, err := doc.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !bytes.Equal(out, wire) {
		t.Fatalf("re-encode = % x, want % x", out, wire)
	}
}

func TestStringUTF8(t *testing.T) {
	tag := &String{Name: "s", Value: "héllo→世界"}
	enc, err := Encode(tag)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	doc, err := Decode(enc)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got := doc.Tags[0].(*String).Value; got != tag.Value {
		t.Fatalf("round trip = %q", got)
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	wire := []byte{
		0x08, 0x00, 0x00,
		0x00, 0x02, 0xc3, 0x28, // invalid continuation byte
	}
	if _, err := Decode(wire); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}

func TestNameInvalidUTF8(t *testing.T) {
	wire := []byte{
		0x01, 0x00, 0x01, 0xff, // TAG_Byte with a non-UTF-8 name byte
		0x05,
	}
	if _, err := Decode(wire); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err = %v, want ErrInvalidUTF8", err)
	}
}

func TestStringNegativeLengthPrefix(t *testing.T) {
	// The length prefix is read as signed. 0x8000 is -32768, rejected
	// rather than treated as 32768.
	wire := []byte{0x08, 0x00, 0x00, 0x80, 0x00}
	if _, err := Decode(wire); !errors.Is(err, ErrNegativeLength) {
		t.Fatalf("err = %v, want ErrNegativeLength", err)
	}
}

func TestStringTooLongToEncode(t *testing.T) {
	tag := &String{Name: "s", Value: strings.Repeat("x", MaxStringLen+1)}
	if _, err := Encode(tag); !errors.Is(err, ErrStringTooLong) {
		t.Fatalf("err = %v, want ErrStringTooLong", err)
	}
}

func TestStringTruncated(t *testing.T) {
	wire := []byte{0x08, 0x00, 0x00, 0x00, 0x05, 'h', 'i'}
	if _, err := Decode(wire); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("err = %v, want ErrOutOfBounds", err)
	}
}
