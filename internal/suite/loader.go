package suite

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"ctv/internal/config"
	"ctv/internal/domain"
)

// File is the YAML form of a suite:
//
//	tests:
//	  - description: ALU add (with overflow) test
//	    name: alu-add
//	    type: alu
type File struct {
	Tests []FileEntry `yaml:"tests"`
}

// FileEntry is one declared test in a suite file
type FileEntry struct {
	Description string `yaml:"description"`
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
}

// Load reads a suite file and resolves its entries against cfg, keeping file order.
func Load(cfg *config.Config, path string) ([]domain.Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse suite file %s: %w", path, err)
	}

	entries := make([]domain.Entry, 0, len(file.Tests))
	for i, t := range file.Tests {
		if t.Name == "" {
			return nil, fmt.Errorf("suite file %s: test %d has no name", path, i+1)
		}
		description := t.Description
		if description == "" {
			description = t.Name
		}
		entries = append(entries, NewEntry(cfg, description, t.Name, t.Type))
	}
	return entries, nil
}
