package huffcode

import (
	"errors"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	symbols, weights := workedExample()
	cb, err := NewCodebook(symbols, weights)
	if err != nil {
		t.Fatalf("NewCodebook failed: %v", err)
	}

	type testRow struct {
		name   string
		bits   string
		expect string
	}

	testData := [...]testRow{
		{name: "empty", bits: "", expect: ""},
		{name: "single", bits: "0", expect: "A"},
		{name: "repeated", bits: "0000", expect: "AAAA"},
		{name: "mixed", bits: "01000110111", expect: "ABAACD"},
		{name: "longest first", bits: "111110100", expect: "DCBA"},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual, err := cb.Decode(row.bits)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if !reflect.DeepEqual(Symbols(row.expect), actual) {
				t.Errorf("expected %v, got %v", Symbols(row.expect), actual)
			}
		})
	}
}

func TestDecode_InvalidBit(t *testing.T) {
	symbols, weights := workedExample()
	cb, err := NewCodebook(symbols, weights)
	if err != nil {
		t.Fatalf("NewCodebook failed: %v", err)
	}

	_, err = cb.Decode("012")
	var invalid InvalidBitError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidBitError, got %v", err)
	}
	if invalid.Bit != '2' {
		t.Errorf("expected bit %q, got %q", byte('2'), invalid.Bit)
	}
	if invalid.Position != 2 {
		t.Errorf("expected position 2, got %d", invalid.Position)
	}
}

func TestDecode_IncompleteCode(t *testing.T) {
	symbols, weights := workedExample()
	cb, err := NewCodebook(symbols, weights)
	if err != nil {
		t.Fatalf("NewCodebook failed: %v", err)
	}

	// "0" decodes to A, then "1" stops mid-codeword.
	_, err = cb.Decode("01")
	var incomplete IncompleteCodeError
	if !errors.As(err, &incomplete) {
		t.Fatalf("expected IncompleteCodeError, got %v", err)
	}
	if incomplete.Position != 1 {
		t.Errorf("expected position 1, got %d", incomplete.Position)
	}
}

func TestDecode_EmptyTree(t *testing.T) {
	_, err := Decode("010", nil)
	var empty EmptyTreeError
	if !errors.As(err, &empty) {
		t.Errorf("expected EmptyTreeError, got %v", err)
	}
}

func TestDecode_MalformedTree(t *testing.T) {
	// A hand-built internal node with a missing right child.
	root := &Node{
		Weight: 1,
		Left:   &Node{Symbol: "A", Weight: 1},
	}

	_, err := Decode("1", root)
	var malformed MalformedTreeError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedTreeError, got %v", err)
	}
	if malformed.Position != 0 {
		t.Errorf("expected position 0, got %d", malformed.Position)
	}
}

func TestDecode_SingleLeaf(t *testing.T) {
	cb, err := NewCodebook([]Symbol{"K"}, []float64{1})
	if err != nil {
		t.Fatalf("NewCodebook failed: %v", err)
	}

	actual, err := cb.Decode("000")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if expect := []Symbol{"K", "K", "K"}; !reflect.DeepEqual(expect, actual) {
		t.Errorf("expected %v, got %v", expect, actual)
	}

	actual, err = cb.Decode("")
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(actual) != 0 {
		t.Errorf("expected an empty sequence, got %v", actual)
	}

	_, err = cb.Decode("01")
	var malformed MalformedTreeError
	if !errors.As(err, &malformed) {
		t.Errorf("expected MalformedTreeError, got %v", err)
	}

	_, err = cb.Decode("0x")
	var invalid InvalidBitError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidBitError, got %v", err)
	}
	if invalid.Position != 1 {
		t.Errorf("expected position 1, got %d", invalid.Position)
	}
}
