package huffcode

import (
	"errors"
	"math/rand"
	"reflect"
	"strings"
	"testing"
)

func TestGenerateCodes(t *testing.T) {
	symbols, weights := workedExample()
	root, err := Build(symbols, weights)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	table, err := GenerateCodes(root)
	if err != nil {
		t.Fatalf("GenerateCodes failed: %v", err)
	}

	expectTable := CodeTable{"A": "0", "B": "10", "C": "110", "D": "111"}
	if !reflect.DeepEqual(expectTable, table) {
		t.Errorf("wrong table:\n\texpect: %#v\n\tactual: %#v", expectTable, table)
	}
}

func TestGenerateCodes_EmptyTree(t *testing.T) {
	_, err := GenerateCodes(nil)
	var empty EmptyTreeError
	if !errors.As(err, &empty) {
		t.Errorf("expected EmptyTreeError, got %v", err)
	}
}

func TestGenerateCodes_SingleLeaf(t *testing.T) {
	root, err := Build([]Symbol{"A"}, []float64{1})
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	table, err := GenerateCodes(root)
	if err != nil {
		t.Fatalf("GenerateCodes failed: %v", err)
	}

	expectTable := CodeTable{"A": "0"}
	if !reflect.DeepEqual(expectTable, table) {
		t.Errorf("wrong table:\n\texpect: %#v\n\tactual: %#v", expectTable, table)
	}
}

func TestGenerateCodes_PrefixFree(t *testing.T) {
	rng = rand.New(rand.NewSource(randSeed))

	for iteration := 0; iteration < iterations; iteration++ {
		symbols, weights := randomAlphabet(2 + rng.Intn(39))

		root, err := Build(symbols, weights)
		if err != nil {
			t.Fatalf("Build #%d failed: %v", iteration, err)
		}
		table, err := GenerateCodes(root)
		if err != nil {
			t.Fatalf("GenerateCodes #%d failed: %v", iteration, err)
		}
		if len(table) != len(symbols) {
			t.Errorf("table #%d: expected %d entries, got %d", iteration, len(symbols), len(table))
		}

		for symbolA, codeA := range table {
			if codeA == "" {
				t.Errorf("table #%d: symbol %q has an empty codeword", iteration, symbolA)
			}
			for symbolB, codeB := range table {
				if symbolA == symbolB {
					continue
				}
				if strings.HasPrefix(codeB, codeA) {
					t.Errorf("table #%d: codeword %q of %q is a prefix of codeword %q of %q",
						iteration, codeA, symbolA, codeB, symbolB)
				}
			}
		}
	}
}

func TestCodeTable_Lengths(t *testing.T) {
	symbols, weights := workedExample()
	cb, err := NewCodebook(symbols, weights)
	if err != nil {
		t.Fatalf("NewCodebook failed: %v", err)
	}

	table := cb.Table()
	if min := table.MinLength(); min != 1 {
		t.Errorf("expected minimum length 1, got %d", min)
	}
	if max := table.MaxLength(); max != 3 {
		t.Errorf("expected maximum length 3, got %d", max)
	}
}

func TestCodeTable_Dump(t *testing.T) {
	symbols, weights := workedExample()
	root, err := Build(symbols, weights)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	table, err := GenerateCodes(root)
	if err != nil {
		t.Fatalf("GenerateCodes failed: %v", err)
	}

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tCode(\"A\") = \"0\"\n",
		"\tCode(\"B\") = \"10\"\n",
		"\tCode(\"C\") = \"110\"\n",
		"\tCode(\"D\") = \"111\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = table.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
}
