package labels

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"naivebaseline/internal/fileio"
)

// Required header columns of the training terms file.
const (
	ColEntryID = "EntryID"
	ColTerm    = "term"
)

// InputName labels training-file errors.
const InputName = "training terms"

var ErrInvalidTopK = errors.New("top-k must be > 0")

// Stats summarizes one training file.
type Stats struct {
	Rows        int // data rows read
	Skipped     int // rows with an empty or absent term
	UniqueTerms int
	Retained    int
}

// Compute reads the tab-separated training file at path ("-" for stdin, .gz
// accepted) and returns the topK most frequent terms with scores normalized
// over the retained set.
func Compute(ctx context.Context, path string, topK int) ([]Frequency, Stats, error) {
	if topK <= 0 {
		return nil, Stats{}, ErrInvalidTopK
	}
	rc, err := fileio.Open(path)
	if err != nil {
		return nil, Stats{}, &fileio.InputFormatError{Input: InputName, Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()
	return ComputeReader(ctx, rc, path, topK)
}

// ComputeReader is Compute over an open stream; name is used in errors.
func ComputeReader(ctx context.Context, r io.Reader, name string, topK int) ([]Frequency, Stats, error) {
	if topK <= 0 {
		return nil, Stats{}, ErrInvalidTopK
	}
	c, st, err := Count(ctx, r, name)
	if err != nil {
		return nil, st, err
	}
	freqs := c.MostCommon(topK)
	Normalize(freqs)
	st.UniqueTerms = c.Len()
	st.Retained = len(freqs)
	return freqs, st, nil
}

// Count tallies the term column of a TSV stream with a header row.
// Columns are located by name; any others are ignored.
func Count(ctx context.Context, r io.Reader, name string) (*Counter, Stats, error) {
	var st Stats
	bad := func(line int, err error) error {
		return &fileio.InputFormatError{Input: InputName, Path: name, Line: line, Err: err}
	}

	cr := csv.NewReader(r)
	cr.Comma = '\t'
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, st, bad(0, errors.New("empty file, expected a header row"))
	}
	if err != nil {
		return nil, st, bad(0, err)
	}
	idCol, termCol := -1, -1
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		switch h {
		case ColEntryID:
			if idCol < 0 {
				idCol = i
			}
		case ColTerm:
			if termCol < 0 {
				termCol = i
			}
		}
	}
	var missing []string
	if idCol < 0 {
		missing = append(missing, ColEntryID)
	}
	if termCol < 0 {
		missing = append(missing, ColTerm)
	}
	if len(missing) > 0 {
		return nil, st, bad(1, fmt.Errorf("missing required column(s) %s", strings.Join(missing, ", ")))
	}

	c := NewCounter()
	for {
		if err := ctx.Err(); err != nil {
			return nil, st, err
		}
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, st, bad(pe.Line, pe.Err)
			}
			return nil, st, bad(0, err)
		}
		st.Rows++
		// short rows leave trailing columns empty
		var term string
		if termCol < len(rec) {
			term = rec[termCol]
		}
		if term == "" {
			st.Skipped++
			continue
		}
		c.Add(term)
	}
	return c, st, nil
}
