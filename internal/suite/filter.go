package suite

import (
	"path/filepath"
	"strings"

	"ctv/internal/domain"
)

// Filter filters suite entries by description pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the entries whose description matches pattern, in order.
// Supports wildcard patterns like "ALU*" or "*shift*"; a pattern without
// wildcards matches as a substring.
func (f *Filter) FilterByName(entries []domain.Entry, pattern string) []domain.Entry {
	if pattern == "" {
		return entries
	}

	var filtered []domain.Entry
	for _, entry := range entries {
		if matches(entry.Description, pattern) {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

func matches(name, pattern string) bool {
	// filepath.Match supports * and ? wildcards
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if !strings.ContainsAny(pattern, "*?") {
		return strings.Contains(name, pattern)
	}

	// filepath.Match's * stops at '/', as in "r/w"; fall back to finding
	// every literal part in order.
	if !strings.Contains(pattern, "*") {
		return false
	}
	rest := name
	for _, part := range strings.Split(pattern, "*") {
		if part == "" {
			continue
		}
		i := strings.Index(rest, part)
		if i < 0 {
			return false
		}
		rest = rest[i+len(part):]
	}
	return true
}
