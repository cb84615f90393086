// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"naivebaseline/internal/fileio"
)

// InputName labels test-sequence errors.
const InputName = "test sequences"

// Record is one FASTA record header. Sequence lines are never retained.
type Record struct {
	ID   string // first whitespace-delimited token of the header; may be empty
	Line int    // 1-based line of the header
}

// WarnFunc receives non-fatal problems (skipped records).
type WarnFunc func(format string, a ...any)

// StreamHeadersCtx scans FASTA from r and emits one Record per header,
// including headers with no id ('>' alone). Sequence content is skipped
// unchecked. Sequence data before the first header is reported once through
// warn and skipped.
//
// It is cancelable between lines. emit may return an error to stop early.
func StreamHeadersCtx(ctx context.Context, r io.Reader, warn WarnFunc, emit func(Record) error) error {
	if warn == nil {
		warn = func(string, ...any) {}
	}
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		ln         int
		seenHeader bool
		orphan     bool
	)
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		ln++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		if line[0] != '>' {
			if !seenHeader && !orphan && len(bytes.TrimSpace(line)) > 0 {
				orphan = true
				warn("line %d: sequence data before first header; skipping", ln)
			}
			continue
		}
		seenHeader = true
		if err := emit(Record{ID: parseHeaderID(string(line[1:])), Line: ln}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan (line %d): %w", ln+1, err)
	}
	return nil
}

// StreamHeadersPathCtx opens path ("-" for stdin, gzip detected) and runs
// StreamHeadersCtx over it.
func StreamHeadersPathCtx(ctx context.Context, path string, warn WarnFunc, emit func(Record) error) error {
	rc, err := fileio.Open(path)
	if err != nil {
		return &fileio.InputFormatError{Input: InputName, Path: path, Err: err}
	}
	defer func() { _ = rc.Close() }()
	if err := StreamHeadersCtx(ctx, rc, warn, emit); err != nil {
		if ctx.Err() != nil {
			return err
		}
		return &fileio.InputFormatError{Input: InputName, Path: path, Err: err}
	}
	return nil
}

func parseHeaderID(hdr string) string {
	hdr = strings.TrimSpace(hdr)
	if i := strings.IndexAny(hdr, " \t"); i >= 0 {
		return hdr[:i]
	}
	return hdr
}
