// Package compare implements the streaming line comparison between a
// simulator trace and its reference trace.
package compare

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"ctv/internal/domain"
)

// Unbounded compares subject against reference one line at a time until the
// reference is exhausted (pass) or a pair of lines differs (fail).
//
// The reference decides the length of the trace: lines the subject produces
// past the end of the reference are never read. A subject that ends early
// yields an empty line, which differs from any remaining reference line, so
// a short trace always fails.
//
// Every compared pair is appended to the returned record, including the pair
// that ended the comparison. The returned error is only set for I/O failures
// other than end of stream.
func Unbounded(subject, reference io.Reader) (bool, domain.Record, error) {
	sub := bufio.NewReader(subject)
	ref := bufio.NewReader(reference)

	var record domain.Record
	for {
		subLine, err := readLine(sub)
		if err != nil {
			return false, record, fmt.Errorf("read subject trace: %w", err)
		}
		refLine, err := readLine(ref)
		if err != nil {
			return false, record, fmt.Errorf("read reference trace: %w", err)
		}

		record = append(record, domain.LinePair{
			Subject:   trimRight(subLine),
			Reference: trimRight(refLine),
		})

		if refLine == "" {
			return true, record, nil
		}
		if subLine != refLine {
			return false, record, nil
		}
	}
}

// readLine returns the next line including its terminator, or "" once the
// stream is exhausted.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if errors.Is(err, io.EOF) {
		return line, nil
	}
	return line, err
}

func trimRight(s string) string {
	return strings.TrimRightFunc(s, unicode.IsSpace)
}
