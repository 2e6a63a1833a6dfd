package huffcode

import (
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	type testRow struct {
		name   string
		err    error
		expect []string
	}

	testData := [...]testRow{
		{
			name:   "InvalidInputError",
			err:    InvalidInputError{Reason: "alphabet is empty"},
			expect: []string{"invalid input", "alphabet is empty"},
		},
		{
			name:   "EmptyTreeError",
			err:    EmptyTreeError{},
			expect: []string{"empty tree"},
		},
		{
			name:   "UnknownSymbolError",
			err:    UnknownSymbolError{Symbol: "X", Position: 3},
			expect: []string{`"X"`, "position 3"},
		},
		{
			name:   "InvalidBitError",
			err:    InvalidBitError{Bit: '2', Position: 5},
			expect: []string{"'2'", "position 5"},
		},
		{
			name:   "MalformedTreeError",
			err:    MalformedTreeError{Position: 7},
			expect: []string{"malformed tree", "position 7"},
		},
		{
			name:   "IncompleteCodeError",
			err:    IncompleteCodeError{Position: 4},
			expect: []string{"mid-codeword", "position 4"},
		},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			message := row.err.Error()
			for _, want := range row.expect {
				if !strings.Contains(message, want) {
					t.Errorf("message %q does not mention %q", message, want)
				}
			}
		})
	}
}
