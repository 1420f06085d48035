// Package decode turns raw simulator trace fields into readable values and
// knows the column headers for each circuit type.
package decode

import (
	"encoding/csv"
	"fmt"
	"math/big"
	"strings"
)

// Format describes how to present the trace of one circuit type.
type Format struct {
	Headers []string
	Decode  func(field string) string
}

// Table maps type tags to their formats.
type Table map[string]Format

// Default holds the formats for the built-in circuit types.
var Default = Table{
	"alu": {
		Headers: []string{"Test #", "OF", "Equal", "Result"},
		Decode:  Bin2Hex,
	},
	"regfile": {
		Headers: []string{"Test #", "ra", "sp", "t0", "t1", "t2", "s0", "s1", "a0", "Read Data 1", "Read Data 2"},
		Decode:  Bin2Hex,
	},
}

// Lookup returns the format registered for tag.
func (t Table) Lookup(tag string) (Format, bool) {
	f, ok := t[tag]
	return f, ok
}

// Headers writes the header row for tag and reports whether tag is known.
// Nothing is written for an unknown tag.
func (t Table) Headers(w *csv.Writer, tag string) (bool, error) {
	f, ok := t.Lookup(tag)
	if !ok {
		return false, nil
	}
	if err := w.Write(f.Headers); err != nil {
		return true, fmt.Errorf("write %s headers: %w", tag, err)
	}
	return true, nil
}

// Field decodes a single field using the format for tag, falling back to Bin2Hex.
func (t Table) Field(tag, field string) string {
	if f, ok := t.Lookup(tag); ok && f.Decode != nil {
		return f.Decode(field)
	}
	return Bin2Hex(field)
}

// Bin2Hex converts a binary field such as "0000 1010" to "0x0a". The simulator
// groups bits with spaces; those are ignored. The result has one hex digit per
// four bits, rounded up. Fields that are not purely binary (undefined "x",
// error "E", empty) are returned unchanged.
func Bin2Hex(field string) string {
	bits := strings.ReplaceAll(field, " ", "")
	if bits == "" || strings.Trim(bits, "01") != "" {
		return field
	}

	n, ok := new(big.Int).SetString(bits, 2)
	if !ok {
		return field
	}

	digits := (len(bits) + 3) / 4
	hex := n.Text(16)
	if pad := digits - len(hex); pad > 0 {
		hex = strings.Repeat("0", pad) + hex
	}
	return "0x" + hex
}
