package storage

import (
	"time"

	"ctv/internal/config"
	"ctv/internal/domain"
)

// Storage persists and loads suite run results (e.g. for the faills viewer).
type Storage interface {
	Save(results []domain.TestResult, duration time.Duration) error
	Load() (*domain.TestResultsOutput, error)
	// SaveOutput writes the full output (e.g. after marking failures resolved).
	SaveOutput(output *domain.TestResultsOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
	now func() time.Time
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg, now: time.Now}
}
