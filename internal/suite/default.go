// Package suite declares which circuits are verified and against which traces.
package suite

import (
	"ctv/internal/config"
	"ctv/internal/domain"
)

// declared lists the built-in suite as (description, test name, type tag).
// The test name locates <name>.circ and reference_output/<name>.out.
var declared = []struct {
	description string
	name        string
	typeTag     string
}{
	{"ALU add (with overflow) test", "alu-add", "alu"},
	{"ALU arithmetic right shift test", "alu-sra", "alu"},
	{"ALU sll test", "alu-sll", "alu"},
	{"ALU srl test", "alu-srl", "alu"},
	{"ALU sltu test", "alu-sltu", "alu"},
	{"ALU slt test", "alu-slt", "alu"},
	{"ALU and test", "alu-and", "alu"},
	{"ALU or test", "alu-or", "alu"},
	{"ALU subu test", "alu-subu", "alu"},
	{"ALU sub test", "alu-sub", "alu"},
	{"RegFile read/write test", "regfile-read_write", "regfile"},
	{"RegFile $zero test", "regfile-zero", "regfile"},
	{"RegFile r/w all", "regfile-testAllRegs", "regfile"},
}

// Default returns the built-in suite with fixture paths resolved against cfg.
func Default(cfg *config.Config) []domain.Entry {
	entries := make([]domain.Entry, 0, len(declared))
	for _, d := range declared {
		entries = append(entries, NewEntry(cfg, d.description, d.name, d.typeTag))
	}
	return entries
}

// NewEntry builds an entry for the fixtures named name.
func NewEntry(cfg *config.Config, description, name, typeTag string) domain.Entry {
	return domain.Entry{
		Description: description,
		Case: domain.TestCase{
			CircuitPath:   cfg.CircuitPath(name),
			ReferencePath: cfg.ReferencePath(name),
		},
		TypeTag: typeTag,
	}
}
