package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctv/internal/config"
	"ctv/internal/domain"
)

func newStorage(t *testing.T) *JSONStorage {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	s := NewJSONStorage(cfg)
	s.now = func() time.Time { return time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	s := newStorage(t)

	failing := domain.Entry{
		Description: "RegFile $zero test",
		Case:        domain.TestCase{CircuitPath: "regfile-zero.circ", ReferencePath: "reference_output/regfile-zero.out"},
		TypeTag:     "regfile",
	}
	record := domain.Record{
		{Subject: "0\t1", Reference: "0\t1"},
		{Subject: "0\t1", Reference: "0\t0"},
	}
	results := []domain.TestResult{
		{Entry: domain.Entry{Description: "ALU add"}, Verdict: domain.Verdict{Passed: true, Reason: domain.ReasonMatched}},
		{Entry: failing, Verdict: domain.Verdict{Passed: false, Reason: domain.ReasonMismatch}, Record: record},
	}

	require.NoError(t, s.Save(results, 1500*time.Millisecond))

	output, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, domain.TestResultsMeta{
		TotalTests:      2,
		PassedTests:     1,
		FailedTests:     1,
		Duration:        "1.5s",
		DurationSeconds: 1.5,
		Timestamp:       "2026-10-15T12:00:00Z",
	}, output.Meta)

	require.Len(t, output.Details, 1)
	failure := output.Details[0]
	assert.Equal(t, "RegFile $zero test", failure.Description)
	assert.Equal(t, "regfile", failure.TypeTag)
	assert.Equal(t, domain.ReasonMismatch, failure.Reason)
	assert.Equal(t, record, failure.Record)
	assert.False(t, failure.Resolved)
}

func TestJSONStorage_SaveOutputKeepsResolved(t *testing.T) {
	s := newStorage(t)
	require.NoError(t, s.Save(nil, 0))

	output, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, output.Details)

	output.Details = append(output.Details, domain.TestFailure{Description: "ALU or test", Resolved: true})
	require.NoError(t, s.SaveOutput(output))

	reloaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, reloaded.Details, 1)
	assert.True(t, reloaded.Details[0].Resolved)
}

func TestJSONStorage_LoadMissing(t *testing.T) {
	_, err := newStorage(t).Load()
	assert.Error(t, err)
}
