package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/dataset"
	"github.com/chronos-tachyon/huffcode/research"
	"github.com/chronos-tachyon/huffcode/seqfile"
)

var log = logging.MustGetLogger("huffcode")

const progName = "huffcode"
const usageMessageRaw = `
Usage: huffcode [-debug] SUBCOMMAND...

Subcommands:
  codes [-alphabet CSV] [-probs CSV | -dist uniform|p1|p2]
    Build a Huffman code for the alphabet and print the codeword table
    together with its quality metrics.  Without flags the built-in lab
    alphabet under the uniform distribution is used.  Probabilities that
    do not sum to 1 are normalized first.

  encode -in FILE -out FILE [-alphabet CSV] [-probs CSV | -dist NAME]
    Read a symbol sequence from the input file, encode it with the code
    built for the alphabet, and write the '0'/'1' bit string to the
    output file.  Reports the compression ratio against 8 bits per
    input symbol.

  decode -in FILE -out FILE [-alphabet CSV] [-probs CSV | -dist NAME]
    Read a '0'/'1' bit string from the input file, decode it with the
    code built for the alphabet, and write the symbol sequence to the
    output file.

  report
    Compare the uniform, P1 and P2 distributions over the lab alphabet
    and print the full report.
`

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var argI int = 0

func nextArg(expected string) string {
	if !(argI < ourFlags.NArg()) {
		usageErrorf("not enough arguments; expected %s", expected)
	}
	arg := ourFlags.Arg(argI)
	argI++
	return arg
}

func remainingArgs() []string {
	slice := ourFlags.Args()[argI:]
	argI = ourFlags.NArg()
	return slice
}

func endOfArgs() {
	if argI < ourFlags.NArg() {
		usageErrorf("too many arguments at %d (\"%s\")", argI, ourFlags.Arg(argI))
	}
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{color:bold}%{level:6s}%{color:reset} %{module:-20s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

// codeSpec collects the flags every code-building subcommand shares.
type codeSpec struct {
	alphabetCSV string
	probsCSV    string
	distName    string
}

func addCodeFlags(subFlags *flag.FlagSet, spec *codeSpec) {
	subFlags.StringVar(&spec.alphabetCSV, "alphabet", "", "")
	subFlags.StringVar(&spec.probsCSV, "probs", "", "")
	subFlags.StringVar(&spec.distName, "dist", "", "")
}

func parseAlphabet(csv string) ([]huffcode.Symbol, error) {
	parts := strings.Split(csv, ",")
	symbols := make([]huffcode.Symbol, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, fmt.Errorf("alphabet contains an empty symbol")
		}
		symbols = append(symbols, huffcode.Symbol(part))
	}
	return symbols, nil
}

func parseProbs(csv string) ([]float64, error) {
	parts := strings.Split(csv, ",")
	probs := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		p, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("bad probability %q: %w", part, err)
		}
		probs = append(probs, p)
	}
	return probs, nil
}

// normalize scales probs to sum to 1 when the sum is off by more than
// dataset.SumTolerance.  All-zero input is left alone.
func normalize(probs []float64) []float64 {
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if sum <= 0 {
		return probs
	}
	if math.Abs(sum-1) > dataset.SumTolerance {
		log.Infof("probabilities sum to %.6f, normalizing", sum)
		for i := range probs {
			probs[i] /= sum
		}
	}
	return probs
}

func uniformProbs(n int) []float64 {
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = 1 / float64(n)
	}
	return probs
}

func (spec codeSpec) resolve() ([]huffcode.Symbol, []float64, error) {
	symbols := dataset.Alphabet()
	if spec.alphabetCSV != "" {
		var err error
		symbols, err = parseAlphabet(spec.alphabetCSV)
		if err != nil {
			return nil, nil, err
		}
	}

	if spec.probsCSV != "" && spec.distName != "" {
		return nil, nil, fmt.Errorf("-probs and -dist are mutually exclusive")
	}

	var probs []float64
	switch {
	case spec.probsCSV != "":
		var err error
		probs, err = parseProbs(spec.probsCSV)
		if err != nil {
			return nil, nil, err
		}
	case spec.distName == "" || spec.distName == "uniform":
		probs = uniformProbs(len(symbols))
	case spec.distName == "p1":
		probs = dataset.P1()
	case spec.distName == "p2":
		probs = dataset.P2()
	default:
		return nil, nil, fmt.Errorf("unknown distribution %q (want uniform, p1 or p2)", spec.distName)
	}
	return symbols, normalize(probs), nil
}

func (spec codeSpec) codebook() (*huffcode.Codebook, error) {
	symbols, probs, err := spec.resolve()
	if err != nil {
		return nil, err
	}
	cb, err := huffcode.NewCodebook(symbols, probs)
	if err != nil {
		return nil, err
	}
	log.Debugf("built %s", cb)
	return cb, nil
}

func printMetrics(w io.Writer, m huffcode.Metrics) {
	fmt.Fprintf(w, "Average length: %.4f bits/symbol\n", m.AverageLength)
	fmt.Fprintf(w, "Entropy:        %.4f bits/symbol\n", m.Entropy)
	fmt.Fprintf(w, "Redundancy:     %.4f bits/symbol\n", m.Redundancy)
	kraftNote := "inequality holds"
	if !m.KraftOK {
		kraftNote = "inequality VIOLATED"
	}
	fmt.Fprintf(w, "Kraft sum:      %.4f (%s)\n", m.KraftSum, kraftNote)
}

func runCodes(spec codeSpec) error {
	cb, err := spec.codebook()
	if err != nil {
		return err
	}

	symbols := cb.Symbols()
	probs := cb.Weights()
	fmt.Fprintf(os.Stdout, "%-8s  %11s  %-10s  %6s\n", "Symbol", "Probability", "Codeword", "Length")
	for index, symbol := range symbols {
		code, _ := cb.Code(symbol)
		fmt.Fprintf(os.Stdout, "%-8s  %11.4f  %-10s  %6d\n", symbol, probs[index], code, len(code))
	}
	printMetrics(os.Stdout, cb.Metrics())
	return nil
}

func runEncode(spec codeSpec, inPath, outPath string) error {
	cb, err := spec.codebook()
	if err != nil {
		return err
	}

	text, err := seqfile.Read(inPath)
	if err != nil {
		return err
	}
	if text == "" {
		return fmt.Errorf("input file %q is empty", inPath)
	}

	seq := huffcode.Symbols(text)
	bits, err := cb.Encode(seq)
	if err != nil {
		return err
	}
	if err := seqfile.Write(outPath, bits); err != nil {
		return err
	}

	log.Infof("encoded %d symbols into %d bits", len(seq), len(bits))
	log.Infof("compression ratio: %.4f", huffcode.CompressionRatio(len(seq), len(bits)))
	return nil
}

func runDecode(spec codeSpec, inPath, outPath string) error {
	cb, err := spec.codebook()
	if err != nil {
		return err
	}

	bits, err := seqfile.Read(inPath)
	if err != nil {
		return err
	}
	if bits == "" {
		return fmt.Errorf("input file %q is empty", inPath)
	}

	seq, err := cb.Decode(bits)
	if err != nil {
		return err
	}
	if err := seqfile.Write(outPath, huffcode.Join(seq)); err != nil {
		return err
	}

	log.Infof("decoded %d bits into %d symbols", len(bits), len(seq))
	return nil
}

func subFlagSet() *flag.FlagSet {
	subFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	subFlags.Usage = func() {}
	subFlags.SetOutput(&nullWriter{})
	return subFlags
}

func parseSubFlags(subFlags *flag.FlagSet) {
	argErr := subFlags.Parse(remainingArgs())
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	ourFlags = subFlags
	argI = 0
	endOfArgs()
}

func codesFromArgs() (func() error, error) {
	subFlags := subFlagSet()
	var spec codeSpec
	addCodeFlags(subFlags, &spec)
	parseSubFlags(subFlags)

	return func() error {
		return runCodes(spec)
	}, nil
}

func transcodeFromArgs(run func(codeSpec, string, string) error) (func() error, error) {
	subFlags := subFlagSet()
	var spec codeSpec
	var inPath, outPath string
	addCodeFlags(subFlags, &spec)
	subFlags.StringVar(&inPath, "in", "", "")
	subFlags.StringVar(&outPath, "out", "", "")
	parseSubFlags(subFlags)

	if inPath == "" {
		usageErrorf("input file must be specified")
	}
	if outPath == "" {
		usageErrorf("output file must be specified")
	}

	return func() error {
		return run(spec, inPath, outPath)
	}, nil
}

func reportFromArgs() (func() error, error) {
	subFlags := subFlagSet()
	parseSubFlags(subFlags)

	return func() error {
		_, err := research.Default().Run(os.Stdout)
		return err
	}, nil
}

func main() {
	startLogging()

	var err error
	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	var requestedCommand func() error
	subcommandArg := nextArg("SUBCOMMAND")
	switch subcommandArg {
	default:
		usageErrorf("unrecognized subcommand \"%s\"", subcommandArg)
	case "codes":
		requestedCommand, err = codesFromArgs()
	case "encode":
		requestedCommand, err = transcodeFromArgs(runEncode)
	case "decode":
		requestedCommand, err = transcodeFromArgs(runDecode)
	case "report":
		requestedCommand, err = reportFromArgs()
	}

	if err != nil {
		exitError(err)
	}

	err = requestedCommand()
	if err != nil {
		exitError(err)
	}
}
