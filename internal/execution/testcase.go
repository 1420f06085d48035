package execution

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"ctv/internal/compare"
	"ctv/internal/domain"
)

// CaseExecutor runs one test case: simulate, compare, and render diagnostics on failure
type CaseExecutor struct {
	starter  Starter
	renderer Renderer
	logger   *zap.Logger
}

// NewCaseExecutor creates a new CaseExecutor
func NewCaseExecutor(starter Starter, renderer Renderer, logger *zap.Logger) *CaseExecutor {
	return &CaseExecutor{
		starter:  starter,
		renderer: renderer,
		logger:   logger,
	}
}

// Execute runs tc and returns its verdict with the comparison record. An error
// means the environment is broken (simulator or reference file unavailable),
// not that the circuit is wrong.
func (e *CaseExecutor) Execute(ctx context.Context, tc domain.TestCase, typeTag string) (domain.TestResult, error) {
	start := time.Now()

	passed, record, err := e.compare(ctx, tc)
	if err != nil {
		return domain.TestResult{}, err
	}

	result := domain.TestResult{
		Verdict:  domain.Verdict{Passed: true, Reason: domain.ReasonMatched},
		Record:   record,
		Duration: time.Since(start),
	}
	if passed {
		return result, nil
	}

	result.Verdict = domain.Verdict{Passed: false, Reason: domain.ReasonMismatch}
	if err := e.renderer.Render(record, typeTag); err != nil {
		e.logger.Warn("diagnostic rendering failed",
			zap.String("circuit", tc.CircuitPath),
			zap.Error(err),
		)
	}
	return result, nil
}

// compare owns the simulator for the duration of one comparison. The process
// is terminated before compare returns, whatever the outcome.
func (e *CaseExecutor) compare(ctx context.Context, tc domain.TestCase) (passed bool, record domain.Record, err error) {
	proc, err := e.starter.Start(ctx, tc.CircuitPath)
	if err != nil {
		return false, nil, err
	}
	defer func() {
		if cerr := proc.Close(); cerr != nil {
			e.logger.Warn("failed to terminate simulator", zap.Int("pid", proc.Pid()), zap.Error(cerr))
		}
	}()

	reference, err := os.Open(tc.ReferencePath)
	if err != nil {
		return false, nil, fmt.Errorf("open reference trace: %w", err)
	}
	defer reference.Close()

	passed, record, err = compare.Unbounded(proc.Stdout, reference)
	if err != nil {
		return false, record, fmt.Errorf("compare %s: %w", tc.CircuitPath, err)
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return false, record, ctxErr
	}

	e.logger.Debug("trace compared",
		zap.String("circuit", tc.CircuitPath),
		zap.Bool("passed", passed),
		zap.Int("steps", len(record)),
	)
	return passed, record, nil
}
