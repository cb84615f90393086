// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"naivebaseline/internal/cmdutil"
	"naivebaseline/internal/fasta"
	"naivebaseline/internal/fileio"
	"naivebaseline/internal/labels"
	"naivebaseline/internal/submission"
)

// StdoutPath is Result.Path when the submission went to Deps.Stdout.
const StdoutPath = "-"

// Config selects inputs, output and K for one run.
type Config struct {
	TrainTerms string
	TestFasta  string
	OutputDir  string
	TopK       int
	Stdout     bool // stream rows to Deps.Stdout instead of a file
}

// Deps are the process-level collaborators of a run.
type Deps struct {
	Logger *slog.Logger
	Now    func() time.Time // nil means time.Now
	Stdout io.Writer        // nil means os.Stdout
}

// Result summarizes a completed run.
type Result struct {
	Path        string
	UniqueTerms int
	Terms       int // retained (top-K) terms
	Proteins    int
	Rows        int
}

// Run executes the three stages. Errors keep their fileio type so callers
// can classify them with errors.As.
func Run(ctx context.Context, cfg Config, d Deps) (Result, error) {
	log := d.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	var res Result

	log.Info("loading training terms", "path", cfg.TrainTerms)
	freqs, st, err := labels.Compute(ctx, cfg.TrainTerms, cfg.TopK)
	if err != nil {
		return res, fmt.Errorf("frequencies: %w", err)
	}
	if st.Skipped > 0 {
		log.Warn("rows without a term ignored", "rows", humanize.Comma(int64(st.Skipped)))
	}
	res.UniqueTerms, res.Terms = st.UniqueTerms, st.Retained
	log.Info("training terms loaded",
		"rows", humanize.Comma(int64(st.Rows)),
		"unique_terms", humanize.Comma(int64(st.UniqueTerms)),
		"top_k", cfg.TopK,
		"retained", len(freqs))

	log.Info("loading test proteins", "path", cfg.TestFasta)
	ids, err := fasta.ExtractIDs(ctx, cfg.TestFasta, cmdutil.Warnf(log, fasta.InputName))
	if err != nil {
		return res, fmt.Errorf("identifiers: %w", err)
	}
	res.Proteins = len(ids)
	log.Info("test proteins loaded", "proteins", humanize.Comma(int64(len(ids))))

	if err := ctx.Err(); err != nil {
		return res, err
	}

	log.Info("writing submission")
	if cfg.Stdout {
		out := d.Stdout
		if out == nil {
			out = os.Stdout
		}
		n, err := submission.WriteRows(out, ids, freqs)
		res.Path, res.Rows = StdoutPath, n
		if err != nil {
			return res, fmt.Errorf("submission: %w", &fileio.OutputWriteError{Op: "write", Path: "stdout", Err: err})
		}
	} else {
		path, n, err := submission.Writer{Now: d.Now}.Write(ids, freqs, cfg.OutputDir)
		res.Path, res.Rows = path, n
		if err != nil {
			return res, fmt.Errorf("submission: %w", err)
		}
	}
	log.Info("submission written", "path", res.Path, "rows", humanize.Comma(int64(res.Rows)))
	return res, nil
}
