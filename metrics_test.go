package huffcode

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

func TestMetrics(t *testing.T) {
	symbols, weights := workedExample()
	cb, err := NewCodebook(symbols, weights)
	if err != nil {
		t.Fatalf("NewCodebook failed: %v", err)
	}

	m := cb.Metrics()
	if !almostEqual(m.AverageLength, 1.75) {
		t.Errorf("expected average length 1.75, got %g", m.AverageLength)
	}
	if !almostEqual(m.Entropy, 1.75) {
		t.Errorf("expected entropy 1.75, got %g", m.Entropy)
	}
	if !almostEqual(m.Redundancy, 0) {
		t.Errorf("expected redundancy 0, got %g", m.Redundancy)
	}
	if !almostEqual(m.KraftSum, 1) {
		t.Errorf("expected Kraft sum 1, got %g", m.KraftSum)
	}
	if !m.KraftOK {
		t.Error("expected the Kraft inequality to hold")
	}
}

func TestAverageLength_Errors(t *testing.T) {
	table := CodeTable{"A": "0", "B": "1"}

	_, err := AverageLength(table, []Symbol{"A", "B"}, []float64{0.5})
	var invalid InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}

	_, err = AverageLength(table, []Symbol{"A", "X"}, []float64{0.5, 0.5})
	var unknown UnknownSymbolError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownSymbolError, got %v", err)
	}
	if unknown.Symbol != "X" {
		t.Errorf("expected symbol %q, got %q", "X", unknown.Symbol)
	}
	if unknown.Position != 1 {
		t.Errorf("expected position 1, got %d", unknown.Position)
	}
}

func TestEntropy_ZeroProbability(t *testing.T) {
	ent, err := Entropy([]float64{0.5, 0.5, 0})
	if err != nil {
		t.Fatalf("Entropy failed: %v", err)
	}
	if math.IsNaN(ent) {
		t.Fatal("entropy is NaN")
	}
	if !almostEqual(ent, 1) {
		t.Errorf("expected entropy 1, got %g", ent)
	}
}

func TestEntropy_Negative(t *testing.T) {
	_, err := Entropy([]float64{0.5, -0.5})
	var invalid InvalidInputError
	if !errors.As(err, &invalid) {
		t.Errorf("expected InvalidInputError, got %v", err)
	}
}

func TestRedundancy_NonNegative(t *testing.T) {
	rng = rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		symbols, weights := randomAlphabet(2 + rng.Intn(39))

		// Normalize into a true probability distribution.
		var total float64
		for _, w := range weights {
			total += w
		}
		for i := range weights {
			weights[i] /= total
		}

		cb, err := NewCodebook(symbols, weights)
		if err != nil {
			t.Fatalf("NewCodebook #%d failed: %v", iteration, err)
		}

		m := cb.Metrics()
		if m.Redundancy < -Epsilon {
			t.Errorf("distribution #%d: negative redundancy %g", iteration, m.Redundancy)
		}
		if m.AverageLength < m.Entropy-Epsilon {
			t.Errorf("distribution #%d: average length %g below entropy %g", iteration, m.AverageLength, m.Entropy)
		}
	}
}

func TestKraft_FullTree(t *testing.T) {
	rng = rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		symbols, weights := randomAlphabet(2 + rng.Intn(39))

		cb, err := NewCodebook(symbols, weights)
		if err != nil {
			t.Fatalf("NewCodebook #%d failed: %v", iteration, err)
		}

		sum, satisfied := Kraft(cb.Table())
		if !satisfied {
			t.Errorf("code #%d: Kraft inequality violated, sum %g", iteration, sum)
		}
		if !almostEqual(sum, 1) {
			t.Errorf("code #%d: expected Kraft sum 1 for a full tree, got %g", iteration, sum)
		}
	}
}

func TestCompressionRatio(t *testing.T) {
	type testRow struct {
		name        string
		symbolCount int
		bitCount    int
		expect      float64
	}

	testData := [...]testRow{
		{name: "worked example", symbolCount: 10, bitCount: 25, expect: 3.2},
		{name: "no output", symbolCount: 0, bitCount: 0, expect: 0},
		{name: "one symbol", symbolCount: 1, bitCount: 8, expect: 1},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			actual := CompressionRatio(row.symbolCount, row.bitCount)
			if !almostEqual(actual, row.expect) {
				t.Errorf("expected ratio %g, got %g", row.expect, actual)
			}
		})
	}
}
