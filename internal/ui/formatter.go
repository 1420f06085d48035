package ui

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"ctv/internal/config"
	"ctv/internal/domain"
	"ctv/internal/suite"
)

// Formatter formats and displays run statistics and suite listings
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
	}
}

// PrintMetaStats displays the statistics of a saved run
func (f *Formatter) PrintMetaStats(output *domain.TestResultsOutput) {
	meta := output.Meta
	cyan := color.New(color.FgCyan)
	row := func(label string, c *color.Color, value string) {
		fmt.Fprintf(f.out, "│ %-31s │ ", label)
		c.Fprintf(f.out, "%-27s", value)
		fmt.Fprintln(f.out, " │")
	}
	sep := func() {
		fmt.Fprintln(f.out, "├─────────────────────────────────┼─────────────────────────────┤")
	}

	fmt.Fprintln(f.out)
	cyan.Fprintln(f.out, "╔═══════════════════════════════════════════════════════════════╗")
	cyan.Fprintln(f.out, "║                   Circuit Verification Run                    ║")
	cyan.Fprintln(f.out, "╚═══════════════════════════════════════════════════════════════╝")

	fmt.Fprintln(f.out, "┌─────────────────────────────────┬─────────────────────────────┐")
	row("Total Tests", color.New(color.FgWhite), fmt.Sprint(meta.TotalTests))
	sep()
	row("Passed Tests", color.New(color.FgGreen), fmt.Sprint(meta.PassedTests))
	sep()
	row("Failed Tests", color.New(color.FgRed), fmt.Sprint(meta.FailedTests))
	sep()
	row("Duration", color.New(color.FgWhite), fmt.Sprintf("%.2fs", meta.DurationSeconds))
	sep()
	row("Timestamp", color.New(color.FgWhite), meta.Timestamp)
	fmt.Fprintln(f.out, "└─────────────────────────────────┴─────────────────────────────┘")

	fmt.Fprintln(f.out)
	if meta.FailedTests == 0 {
		color.New(color.FgGreen).Fprintln(f.out, "✓ All tests passed!")
		return
	}
	color.New(color.FgRed).Fprintf(f.out, "✗ %d test(s) failed\n", meta.FailedTests)
	for i, failure := range output.Details {
		connector := "├── "
		if i == len(output.Details)-1 {
			connector = "└── "
		}
		fmt.Fprintf(f.out, "%s%s %s\n", connector, color.RedString(failure.Description), color.YellowString("[%s]", failure.TypeTag))
	}
}

// PrintSuiteList prints the declared suite, marking entries whose fixtures are missing
func (f *Formatter) PrintSuiteList(fixtures []suite.Fixture) {
	color.New(color.FgGreen).Fprintf(f.out, "Found %d declared test(s):\n\n", len(fixtures))

	for i, fx := range fixtures {
		relPath, err := filepath.Rel(f.config.ProjectPath, fx.Entry.Case.CircuitPath)
		if err != nil {
			relPath = fx.Entry.Case.CircuitPath
		}

		marker := ""
		if fx.CircuitMissing {
			marker += " " + color.RedString("[no circuit]")
		}
		if fx.ReferenceMissing {
			marker += " " + color.RedString("[no reference]")
		}

		connector, child := "├── ", "│   └── "
		if i == len(fixtures)-1 {
			connector, child = "└── ", "    └── "
		}
		fmt.Fprintf(f.out, "%s%s %s%s\n", connector, color.CyanString(fx.Entry.Description), color.YellowString("[%s]", fx.Entry.TypeTag), marker)
		fmt.Fprintf(f.out, "%s%s\n", child, relPath)
	}
}
