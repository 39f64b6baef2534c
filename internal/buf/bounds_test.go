package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestMulOverflowSafe(t *testing.T) {
	if prod, ok := MulOverflowSafe(6, 7); !ok || prod != 42 {
		t.Fatalf("MulOverflowSafe(6,7)=%d,%v want 42,true", prod, ok)
	}
	if _, ok := MulOverflowSafe(math.MaxInt/2, 3); ok {
		t.Fatalf("expected overflow for MaxInt/2 * 3")
	}
	if prod, ok := MulOverflowSafe(0, math.MaxInt); !ok || prod != 0 {
		t.Fatalf("zero multiplicand should never overflow")
	}
}

func TestCheckArrayBounds(t *testing.T) {
	end, err := CheckArrayBounds(100, 10, 10, 8)
	if err != nil || end != 90 {
		t.Fatalf("CheckArrayBounds=%d,%v want 90,nil", end, err)
	}
	if _, err := CheckArrayBounds(100, 10, 12, 8); err == nil {
		t.Fatalf("expected bounds error when array exceeds buffer")
	}
	if _, err := CheckArrayBounds(100, 0, -1, 8); err == nil {
		t.Fatalf("expected error for negative count")
	}
	if _, err := CheckArrayBounds(100, 0, math.MaxInt, 8); err == nil {
		t.Fatalf("expected overflow error")
	}
}

func TestSliceAndHas(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if Has(data, 2, 4) {
		t.Fatalf("Has should be false for out-of-bounds range")
	}
	if !Has(data, 2, 1) {
		t.Fatalf("Has should be true for valid range")
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
}
