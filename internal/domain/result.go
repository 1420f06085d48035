package domain

import "time"

const (
	// ReasonMatched is reported when the simulator reproduced the reference trace.
	ReasonMatched = "Matched expected output"
	// ReasonMismatch is reported on any content mismatch, including a short trace.
	ReasonMismatch = "Did not match expected output"
)

// Verdict is the outcome of one test case execution
type Verdict struct {
	Passed bool
	Reason string
}

// TestResult represents the result of executing one suite entry
type TestResult struct {
	Entry    Entry
	Verdict  Verdict
	Record   Record        // Every compared pair, up to the first mismatch
	Duration time.Duration // Time taken to execute
}

// Tally counts passed and failed tests across a suite run.
type Tally struct {
	Passed int
	Failed int
}

// Add returns the tally with v counted.
func (t Tally) Add(v Verdict) Tally {
	if v.Passed {
		t.Passed++
	} else {
		t.Failed++
	}
	return t
}

// Total is the number of tests counted.
func (t Tally) Total() int {
	return t.Passed + t.Failed
}

// TestResultsMeta contains metadata about a suite run
type TestResultsMeta struct {
	TotalTests      int     `json:"total_tests"`
	PassedTests     int     `json:"passed_tests"`
	FailedTests     int     `json:"failed_tests"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// TestResultsOutput is the complete output structure for test results
type TestResultsOutput struct {
	Meta    TestResultsMeta `json:"meta"`
	Details []TestFailure   `json:"details"`
}
