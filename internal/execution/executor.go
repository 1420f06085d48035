package execution

import (
	"context"

	"ctv/internal/domain"
)

// Starter launches a simulator process for a circuit file
type Starter interface {
	Start(ctx context.Context, circuitPath string) (*Process, error)
}

// Renderer prints the diagnostic table for a failed comparison
type Renderer interface {
	Render(record domain.Record, typeTag string) error
}

// Reporter prints per-test and summary lines for a suite run
type Reporter interface {
	Start()
	Result(description string, verdict domain.Verdict)
	Summary(tally domain.Tally)
}

// Progress tracks a suite run for display
type Progress interface {
	Update(passed, failed int)
	Finish()
}
