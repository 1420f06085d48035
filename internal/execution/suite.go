package execution

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"ctv/internal/domain"
)

// SuiteRunner executes suite entries one after another and tallies the verdicts
type SuiteRunner struct {
	cases    *CaseExecutor
	reporter Reporter
	progress Progress
	logger   *zap.Logger
}

// NewSuiteRunner creates a new SuiteRunner
func NewSuiteRunner(cases *CaseExecutor, reporter Reporter, logger *zap.Logger) *SuiteRunner {
	return &SuiteRunner{
		cases:    cases,
		reporter: reporter,
		logger:   logger,
	}
}

// SetProgress sets the progress display for the next run
func (sr *SuiteRunner) SetProgress(progress Progress) {
	sr.progress = progress
}

// Run executes entries in order. Each test's line is reported as soon as it
// finishes and the summary follows the last one. A mismatch never stops the
// run; an environment error does, and is returned with the results so far.
func (sr *SuiteRunner) Run(ctx context.Context, entries []domain.Entry) ([]domain.TestResult, domain.Tally, time.Duration, error) {
	startTime := time.Now()
	var tally domain.Tally
	results := make([]domain.TestResult, 0, len(entries))

	sr.reporter.Start()
	for _, entry := range entries {
		sr.logger.Debug("running test",
			zap.String("description", entry.Description),
			zap.String("type", entry.TypeTag),
		)

		result, err := sr.cases.Execute(ctx, entry.Case, entry.TypeTag)
		if err != nil {
			if sr.progress != nil {
				sr.progress.Finish()
			}
			return results, tally, time.Since(startTime), fmt.Errorf("test %q: %w", entry.Description, err)
		}
		result.Entry = entry
		results = append(results, result)

		tally = tally.Add(result.Verdict)
		sr.reporter.Result(entry.Description, result.Verdict)
		if sr.progress != nil {
			sr.progress.Update(tally.Passed, tally.Failed)
		}
	}
	if sr.progress != nil {
		sr.progress.Finish()
	}
	sr.reporter.Summary(tally)

	return results, tally, time.Since(startTime), nil
}
