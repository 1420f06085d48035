package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"ctv/internal/domain"
)

// Reporter prints the per-test lines and the final summary of a suite run
type Reporter struct {
	out io.Writer
}

// NewReporter creates a new Reporter writing to out
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Start announces the run
func (r *Reporter) Start() {
	fmt.Fprintln(r.out, "Testing files...")
}

// Result prints one test's outcome
func (r *Reporter) Result(description string, verdict domain.Verdict) {
	if verdict.Passed {
		fmt.Fprintf(r.out, "\t%s test: %s\n", color.GreenString("PASSED"), description)
		return
	}
	fmt.Fprintf(r.out, "\t%s test: %s (%s)\n", color.RedString("FAILED"), description, verdict.Reason)
}

// Summary prints the pass count over the total
func (r *Reporter) Summary(tally domain.Tally) {
	fmt.Fprintf(r.out, "Passed %d/%d tests\n", tally.Passed, tally.Total())
}
