package submission

import (
	"os"
	"path/filepath"
	"time"

	"naivebaseline/internal/fileio"
	"naivebaseline/internal/labels"
)

const (
	filePrefix = "naive_baseline_"
	fileSuffix = ".tsv"
	// TimestampLayout is YYYYMMDD-HHMMSS.
	TimestampLayout = "20060102-150405"
)

// Writer places a submission file in an output directory.
type Writer struct {
	// Now stamps the file name; nil means time.Now.
	Now func() time.Time
}

// FileName returns naive_baseline_<YYYYMMDD-HHMMSS>.tsv for t in local time.
func FileName(t time.Time) string {
	return filePrefix + t.Local().Format(TimestampLayout) + fileSuffix
}

// Write creates outDir if needed and writes the ids × freqs submission to a
// timestamped file inside it. A file from the same second is overwritten.
// It returns the written path and row count.
func (w Writer) Write(ids []string, freqs []labels.Frequency, outDir string) (string, int, error) {
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", 0, &fileio.OutputWriteError{Op: "create directory", Path: outDir, Err: err}
	}
	path := filepath.Join(outDir, FileName(now()))

	fh, err := os.Create(path)
	if err != nil {
		return "", 0, &fileio.OutputWriteError{Op: "create", Path: path, Err: err}
	}
	n, err := WriteRows(fh, ids, freqs)
	if cerr := fh.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", n, &fileio.OutputWriteError{Op: "write", Path: path, Err: err}
	}
	return path, n, nil
}
