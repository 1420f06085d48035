package compare

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ctv/internal/domain"
)

func lines(n int, line string) string {
	return strings.Repeat(line+"\n", n)
}

func TestUnbounded(t *testing.T) {
	tests := []struct {
		name      string
		subject   string
		reference string
		passed    bool
		recordLen int
	}{
		{
			name:      "identical traces",
			subject:   "0001\t0010\n0011\t0100\n",
			reference: "0001\t0010\n0011\t0100\n",
			passed:    true,
			recordLen: 3,
		},
		{
			name:      "extra subject lines are ignored",
			subject:   lines(5, "00000001\t00000010") + lines(5, "garbage"),
			reference: lines(5, "00000001\t00000010"),
			passed:    true,
			recordLen: 6,
		},
		{
			name:      "mismatch at third step",
			subject:   "00000001\t00000010\n00000001\t00000010\n00000001\t00000010\n00000001\t00000010\n",
			reference: "00000001\t00000010\n00000001\t00000010\n00000001\t00000011\n00000001\t00000010\n",
			passed:    false,
			recordLen: 3,
		},
		{
			name:      "subject shorter than reference",
			subject:   "0001\n",
			reference: "0001\n0010\n0011\n",
			passed:    false,
			recordLen: 2,
		},
		{
			name:      "empty subject",
			subject:   "",
			reference: "0001\n",
			passed:    false,
			recordLen: 1,
		},
		{
			name:      "empty reference passes anything",
			subject:   "whatever\n",
			reference: "",
			passed:    true,
			recordLen: 1,
		},
		{
			name:      "trailing whitespace still counts for equality",
			subject:   "0001 \n",
			reference: "0001\n",
			passed:    false,
			recordLen: 1,
		},
		{
			name:      "missing final newline on subject",
			subject:   "0001\n0010",
			reference: "0001\n0010\n",
			passed:    false,
			recordLen: 2,
		},
		{
			name:      "blank reference line is not end of stream",
			subject:   "0001\n0010\n",
			reference: "0001\n\n",
			passed:    false,
			recordLen: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			passed, record, err := Unbounded(strings.NewReader(tt.subject), strings.NewReader(tt.reference))
			require.NoError(t, err)
			assert.Equal(t, tt.passed, passed)
			assert.Len(t, record, tt.recordLen)
		})
	}
}

func TestUnbounded_RecordContents(t *testing.T) {
	subject := "00000001\t00000010\r\n00000001\t00000010\n00000001\t00000010\n"
	reference := "00000001\t00000010\r\n00000001\t00000010\n00000001\t00000011\n"

	passed, record, err := Unbounded(strings.NewReader(subject), strings.NewReader(reference))
	require.NoError(t, err)
	assert.False(t, passed)

	expected := domain.Record{
		{Subject: "00000001\t00000010", Reference: "00000001\t00000010"},
		{Subject: "00000001\t00000010", Reference: "00000001\t00000010"},
		{Subject: "00000001\t00000010", Reference: "00000001\t00000011"},
	}
	assert.Equal(t, expected, record)
}

func TestUnbounded_ShortSubjectRecordsEmptyLine(t *testing.T) {
	_, record, err := Unbounded(strings.NewReader("a\n"), strings.NewReader("a\nb\n"))
	require.NoError(t, err)
	require.Len(t, record, 2)
	assert.Equal(t, domain.LinePair{Subject: "", Reference: "b"}, record[1])
}

func TestUnbounded_Idempotent(t *testing.T) {
	subject := lines(3, "0\t1") + "1\t1\n"
	reference := lines(4, "0\t1")

	p1, r1, err := Unbounded(strings.NewReader(subject), strings.NewReader(reference))
	require.NoError(t, err)
	p2, r2, err := Unbounded(strings.NewReader(subject), strings.NewReader(reference))
	require.NoError(t, err)

	assert.Equal(t, p1, p2)
	assert.Equal(t, r1, r2)
}

// stopReader serves data and then fails with err
type stopReader struct {
	data string
	err  error
}

func (r *stopReader) Read(p []byte) (int, error) {
	if r.data == "" {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}

func TestUnbounded_ReadError(t *testing.T) {
	boom := errors.New("pipe broken")

	t.Run("subject", func(t *testing.T) {
		sub := &stopReader{data: "a\n", err: boom}
		passed, record, err := Unbounded(sub, strings.NewReader("a\nb\n"))
		assert.False(t, passed)
		assert.ErrorIs(t, err, boom)
		assert.Len(t, record, 1)
	})

	t.Run("reference", func(t *testing.T) {
		ref := &stopReader{data: "a\n", err: boom}
		passed, _, err := Unbounded(strings.NewReader("a\nb\n"), ref)
		assert.False(t, passed)
		assert.ErrorIs(t, err, boom)
	})

	t.Run("eof is not an error", func(t *testing.T) {
		ref := &stopReader{data: "a\n", err: io.EOF}
		passed, _, err := Unbounded(strings.NewReader("a\n"), ref)
		assert.True(t, passed)
		assert.NoError(t, err)
	})
}
