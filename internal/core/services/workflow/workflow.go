// Package workflow runs one interactive checksum comparison: it prompts for
// the expected value, the file path and the algorithm, asks the engine for
// the checksum and reports whether the two match.
package workflow

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/iamNilotpal/checksum/internal/core/domain"
	cserrors "github.com/iamNilotpal/checksum/pkg/errors"
	"go.uber.org/zap"
)

const (
	promptExpected = "Please enter the checksum to compare:"
	promptPath     = "Please enter the file path:"
	menuHeader     = "\nSelect the algorithm:"

	msgInvalidSelection = "Invalid selection!"
	msgMatch            = "\nChecksums match! ✓"
	msgMismatch         = "\nChecksums do NOT match! ✗"
)

// Computer produces the hex checksum of a file.
type Computer interface {
	Compute(algorithm domain.Algorithm, path string) (string, error)
}

// Report is the outcome of one run.
type Report struct {
	Expected  string
	Path      string
	Computed  string
	Algorithm domain.Algorithm
	Match     bool
	State     domain.State
}

// Workflow reads operator answers from in and writes prompts and results to out.
type Workflow struct {
	engine Computer
	in     *bufio.Reader
	out    io.Writer
	log    *zap.SugaredLogger
	state  domain.State
}

func New(engine Computer, in io.Reader, out io.Writer, log *zap.SugaredLogger) *Workflow {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Workflow{
		engine: engine,
		in:     bufio.NewReader(in),
		out:    out,
		log:    log,
		state:  domain.StateAwaitingExpected,
	}
}

// Run performs the interaction once. An invalid selection is reported to the
// operator and returns a nil error. I/O failures from the engine are returned
// unchanged and nothing is reported.
func (w *Workflow) Run() (*Report, error) {
	if w.state != domain.StateAwaitingExpected {
		return nil, fmt.Errorf("workflow already ran, state %s", w.state)
	}
	report := &Report{}

	expected, err := w.ask(promptExpected)
	if err != nil {
		return nil, err
	}
	report.Expected = expected
	w.state = domain.StateAwaitingPath

	path, err := w.ask(promptPath)
	if err != nil {
		return nil, err
	}
	report.Path = path
	w.state = domain.StateAwaitingSelector

	if err := w.printMenu(); err != nil {
		return nil, err
	}
	selector, err := w.readLine()
	if err != nil {
		return nil, err
	}

	algorithm, err := domain.ParseAlgorithm(selector)
	if err != nil {
		return w.invalidSelection(report, selector, cserrors.NewSelectionError(err))
	}
	report.Algorithm = algorithm
	w.state = domain.StateComputing

	// Failures are returned for the caller to log; only a recoverable
	// selection error is handled here.
	computed, err := w.engine.Compute(algorithm, path)
	if err != nil {
		if ce := cserrors.AsChecksumError(err); ce != nil && ce.IsRecoverable() {
			return w.invalidSelection(report, selector, ce)
		}
		return nil, err
	}
	report.Computed = computed
	w.state = domain.StateComparing

	report.Match = Equal(expected, computed)
	if err := w.printResult(report); err != nil {
		return nil, err
	}
	w.state = domain.StateReported
	report.State = w.state

	w.log.Infow("checksum compared", "algorithm", algorithm, "path", path, "match", report.Match)
	return report, nil
}

func (w *Workflow) invalidSelection(r *Report, selector string, err *cserrors.ChecksumError) (*Report, error) {
	w.state = domain.StateInvalidSelection
	r.State = w.state
	r.Algorithm = 0
	w.log.Infow("invalid selection", "selector", selector, "category", err.Category, "error", err.Err)
	return r, w.println(msgInvalidSelection)
}

// State returns the current workflow state.
func (w *Workflow) State() domain.State {
	return w.state
}

// Equal compares two checksum strings ignoring ASCII case only. Non-ASCII
// letters never fold, so "\u212a" (Kelvin sign) does not equal "k".
func Equal(expected, computed string) bool {
	if len(expected) != len(computed) {
		return false
	}
	for i := 0; i < len(expected); i++ {
		if lowerASCII(expected[i]) != lowerASCII(computed[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func (w *Workflow) ask(prompt string) (string, error) {
	if err := w.println(prompt); err != nil {
		return "", err
	}
	return w.readLine()
}

// readLine returns the next input line with surrounding whitespace removed.
// End of input is treated as an empty line.
func (w *Workflow) readLine() (string, error) {
	line, err := w.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func (w *Workflow) printMenu() error {
	if err := w.println(menuHeader); err != nil {
		return err
	}
	for _, a := range domain.Algorithms() {
		if _, err := fmt.Fprintf(w.out, "%d. %s\n", a, a); err != nil {
			return err
		}
	}
	return nil
}

func (w *Workflow) printResult(r *Report) error {
	if _, err := fmt.Fprintf(w.out, "\nEntered checksum:  %s\n", r.Expected); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w.out, "Calculated checksum: %s\n", r.Computed); err != nil {
		return err
	}
	if r.Match {
		return w.println(msgMatch)
	}
	return w.println(msgMismatch)
}

func (w *Workflow) println(s string) error {
	_, err := fmt.Fprintln(w.out, s)
	return err
}
