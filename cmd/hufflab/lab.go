package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chronos-tachyon/huffcode"
	"github.com/chronos-tachyon/huffcode/dataset"
)

const messageLimit = 50

// LogEvent is one log line pushed to the browser over the websocket.
type LogEvent struct {
	Text string `json:"text"`
}

// CodeRow is one line of the codeword table on the codes tab.
type CodeRow struct {
	Symbol      huffcode.Symbol
	Probability float64
	Code        string
	Length      int
}

// LabView is the immutable snapshot handed to the index template.
type LabView struct {
	Built    bool
	Rows     []CodeRow
	Metrics  huffcode.Metrics
	Messages []string
}

// Lab is the interactive state behind the form: the code built last plus a
// bounded ring of recent operation messages.  Requests run concurrently,
// hence the lock.
type Lab struct {
	mu        sync.Mutex
	cond      *sync.Cond
	lastEvent *LogEvent
	codebook  *huffcode.Codebook
	rows      []CodeRow
	metrics   huffcode.Metrics
	messages  []string
}

func NewLab() *Lab {
	lab := &Lab{}
	lab.cond = sync.NewCond(&lab.mu)
	return lab
}

func (lab *Lab) SetCode(cb *huffcode.Codebook) {
	symbols := cb.Symbols()
	probs := cb.Weights()
	rows := make([]CodeRow, 0, len(symbols))
	for index, symbol := range symbols {
		code, _ := cb.Code(symbol)
		rows = append(rows, CodeRow{
			Symbol:      symbol,
			Probability: probs[index],
			Code:        code,
			Length:      len(code),
		})
	}
	metrics := cb.Metrics()

	lab.mu.Lock()
	defer lab.mu.Unlock()
	lab.codebook = cb
	lab.rows = rows
	lab.metrics = metrics
}

// Logf appends a message to the ring, echoes it to the console log and wakes
// every websocket subscriber.
func (lab *Lab) Logf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	log.Infof("%s", message)

	lab.mu.Lock()
	lab.messages = append(lab.messages, message)
	if len(lab.messages) > messageLimit {
		lab.messages = lab.messages[len(lab.messages)-messageLimit:]
	}
	lab.lastEvent = &LogEvent{Text: message}
	lab.mu.Unlock()
	lab.cond.Broadcast()
}

// Subscribe returns a channel that carries log events published after the
// call.  A subscriber that stops draining the channel is dropped after a
// second.
func (lab *Lab) Subscribe() <-chan LogEvent {
	ch := make(chan LogEvent)
	go func(ch chan LogEvent) {
		lab.mu.Lock()
		lastSeen := lab.lastEvent
		lab.mu.Unlock()

		running := true
		for running {
			lab.mu.Lock()
			for lab.lastEvent == nil || lab.lastEvent == lastSeen {
				lab.cond.Wait()
			}
			lastSeen = lab.lastEvent
			lab.mu.Unlock()

			t := time.NewTimer(time.Second)
			select {
			case ch <- *lastSeen:
				t.Stop()
			case <-t.C:
				running = false
			}
		}
	}(ch)

	return ch
}

func (lab *Lab) View() LabView {
	lab.mu.Lock()
	defer lab.mu.Unlock()

	return LabView{
		Built:    lab.codebook != nil,
		Rows:     append([]CodeRow(nil), lab.rows...),
		Metrics:  lab.metrics,
		Messages: append([]string(nil), lab.messages...),
	}
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

func uniformProbs(n int) []float64 {
	probs := make([]float64, n)
	for i := range probs {
		probs[i] = 1 / float64(n)
	}
	return probs
}

// normalizeProbs scales probs in place to sum to 1 when the sum is off by
// more than dataset.SumTolerance.  All-zero input is left alone.
func normalizeProbs(probs []float64) ([]float64, float64, bool) {
	var sum float64
	for _, p := range probs {
		sum += p
	}
	if sum <= 0 || math.Abs(sum-1) <= dataset.SumTolerance {
		return probs, sum, false
	}
	for i := range probs {
		probs[i] /= sum
	}
	return probs, sum, true
}

// buildFromConfig builds a fresh codebook from the stored form fields, the
// way the desktop form rebuilt the code on every button press.
func buildFromConfig(config *Config, lab *Lab) (*huffcode.Codebook, error) {
	symbols, err := parseAlphabet(config.Alphabet)
	if err != nil {
		return nil, err
	}

	var probs []float64
	switch config.Distribution {
	case "", "uniform":
		probs = uniformProbs(len(symbols))
	case "p1":
		probs, err = parseProbs(config.P1)
	case "p2":
		probs, err = parseProbs(config.P2)
	default:
		err = fmt.Errorf("unknown distribution %q (want uniform, p1 or p2)", config.Distribution)
	}
	if err != nil {
		return nil, err
	}

	probs, sum, scaled := normalizeProbs(probs)
	if scaled {
		lab.Logf("probabilities summed to %.6f, normalized", sum)
	}

	return huffcode.NewCodebook(symbols, probs)
}
