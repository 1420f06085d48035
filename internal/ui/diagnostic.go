package ui

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"ctv/internal/domain"
)

// Decoder supplies column headers and readable field values per circuit type
type Decoder interface {
	Headers(w *csv.Writer, typeTag string) (bool, error)
	Field(typeTag, field string) string
}

// DiagnosticRenderer writes a failed comparison as a tab-separated table
type DiagnosticRenderer struct {
	out     io.Writer
	decoder Decoder
}

// NewDiagnosticRenderer creates a new DiagnosticRenderer writing to out
func NewDiagnosticRenderer(out io.Writer, decoder Decoder) *DiagnosticRenderer {
	return &DiagnosticRenderer{out: out, decoder: decoder}
}

// Render writes the header for typeTag followed by two decoded rows per
// compared step: the simulator's line, then the reference line. An unknown
// type tag prints a notice instead of the table.
func (r *DiagnosticRenderer) Render(record domain.Record, typeTag string) error {
	w := csv.NewWriter(r.out)
	w.Comma = '\t'

	known, err := r.decoder.Headers(w, typeTag)
	if err != nil {
		return err
	}
	if !known {
		_, err := fmt.Fprintf(r.out, "CANNOT FORMAT test type= %s\n", typeTag)
		return err
	}

	for _, pair := range record {
		if err := w.Write(r.decodeLine(pair.Subject, typeTag)); err != nil {
			return err
		}
		if err := w.Write(r.decodeLine(pair.Reference, typeTag)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func (r *DiagnosticRenderer) decodeLine(line, typeTag string) []string {
	fields := strings.Split(line, "\t")
	row := make([]string, len(fields))
	for i, field := range fields {
		row[i] = r.decoder.Field(typeTag, field)
	}
	return row
}
