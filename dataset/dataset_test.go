package dataset

import (
	"testing"

	"github.com/chronos-tachyon/huffcode"
)

func TestValidate(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestAlphabet(t *testing.T) {
	symbols := Alphabet()
	if len(symbols) != 8 {
		t.Fatalf("expected 8 symbols, got %d", len(symbols))
	}

	seen := make(map[huffcode.Symbol]bool, len(symbols))
	for _, symbol := range symbols {
		if seen[symbol] {
			t.Errorf("symbol %q appears twice", symbol)
		}
		seen[symbol] = true
	}
}

func TestDistributions_BuildCleanly(t *testing.T) {
	symbols := Alphabet()
	for name, probs := range map[string][]float64{"uniform": Uniform(), "p1": P1(), "p2": P2()} {
		if _, err := huffcode.NewCodebook(symbols, probs); err != nil {
			t.Errorf("distribution %q does not build: %v", name, err)
		}
	}
}

func TestSampleSequences(t *testing.T) {
	inAlphabet := make(map[huffcode.Symbol]bool)
	for _, symbol := range Alphabet() {
		inAlphabet[symbol] = true
	}

	sequences := SampleSequences()
	if len(sequences) != 3 {
		t.Fatalf("expected 3 sample sequences, got %d", len(sequences))
	}
	for name, seq := range sequences {
		if len(seq) != 32 {
			t.Errorf("sequence %q has %d symbols, want 32", name, len(seq))
		}
		for index, symbol := range seq {
			if !inAlphabet[symbol] {
				t.Errorf("sequence %q contains foreign symbol %q at position %d", name, symbol, index)
			}
		}
	}
}
