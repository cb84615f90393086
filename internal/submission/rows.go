// internal/submission/rows.go
package submission

import (
	"bufio"
	"io"
	"strconv"

	"naivebaseline/internal/labels"
)

// FormatScore renders a score with exactly six decimals, no exponent.
func FormatScore(s float64) string {
	return strconv.FormatFloat(s, 'f', 6, 64)
}

// WriteRows streams ids × freqs to w as header-less TSV and returns the
// number of rows written.
func WriteRows(w io.Writer, ids []string, freqs []labels.Frequency) (int, error) {
	bw := bufio.NewWriterSize(w, 256*1024)
	// term and score text are identical for every protein
	suffixes := make([]string, len(freqs))
	for i, s := range formatScores(freqs) {
		suffixes[i] = "\t" + freqs[i].Term + "\t" + s + "\n"
	}
	n := 0
	for _, id := range ids {
		for _, sfx := range suffixes {
			if _, err := bw.WriteString(id); err != nil {
				return n, err
			}
			if _, err := bw.WriteString(sfx); err != nil {
				return n, err
			}
			n++
		}
	}
	return n, bw.Flush()
}

func formatScores(freqs []labels.Frequency) []string {
	out := make([]string, len(freqs))
	for i, f := range freqs {
		out[i] = FormatScore(f.Score)
	}
	return out
}
