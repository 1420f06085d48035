package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"ctv/internal/domain"
)

// Save writes the run's tally and every failing test's record to the configured JSON output file.
func (s *JSONStorage) Save(results []domain.TestResult, duration time.Duration) error {
	var tally domain.Tally
	failures := []domain.TestFailure{}
	for _, r := range results {
		tally = tally.Add(r.Verdict)
		if r.Verdict.Passed {
			continue
		}
		failures = append(failures, domain.TestFailure{
			Description:   r.Entry.Description,
			CircuitPath:   r.Entry.Case.CircuitPath,
			ReferencePath: r.Entry.Case.ReferencePath,
			TypeTag:       r.Entry.TypeTag,
			Reason:        r.Verdict.Reason,
			Record:        r.Record,
		})
	}

	output := domain.TestResultsOutput{
		Meta: domain.TestResultsMeta{
			TotalTests:      tally.Total(),
			PassedTests:     tally.Passed,
			FailedTests:     tally.Failed,
			Duration:        duration.String(),
			DurationSeconds: duration.Seconds(),
			Timestamp:       s.now().Format(time.RFC3339),
		},
		Details: failures,
	}

	return s.SaveOutput(&output)
}

// Load reads the last run from the configured JSON output file.
func (s *JSONStorage) Load() (*domain.TestResultsOutput, error) {
	path := s.cfg.GetOutputPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read results file: %w", err)
	}
	var output domain.TestResultsOutput
	if err := json.Unmarshal(data, &output); err != nil {
		return nil, fmt.Errorf("parse results: %w", err)
	}
	return &output, nil
}

// SaveOutput writes the full output to the configured JSON file.
func (s *JSONStorage) SaveOutput(output *domain.TestResultsOutput) error {
	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	path := s.cfg.GetOutputPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write results: %w", err)
	}
	return nil
}
