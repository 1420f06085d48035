package suite

import (
	"os"

	"ctv/internal/domain"
)

// Fixture reports which files of an entry exist on disk
type Fixture struct {
	Entry            domain.Entry
	CircuitMissing   bool
	ReferenceMissing bool
}

// Missing reports whether either fixture file is absent
func (f Fixture) Missing() bool {
	return f.CircuitMissing || f.ReferenceMissing
}

// Scanner checks suite entries against the filesystem
type Scanner struct{}

// NewScanner creates a new Scanner
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan stats the circuit and reference file of every entry, keeping order.
func (s *Scanner) Scan(entries []domain.Entry) []Fixture {
	fixtures := make([]Fixture, 0, len(entries))
	for _, entry := range entries {
		fixtures = append(fixtures, Fixture{
			Entry:            entry,
			CircuitMissing:   !isFile(entry.Case.CircuitPath),
			ReferenceMissing: !isFile(entry.Case.ReferencePath),
		})
	}
	return fixtures
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
