// internal/app/app.go
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"naivebaseline/internal/cli"
	"naivebaseline/internal/cmdutil"
	"naivebaseline/internal/config"
	"naivebaseline/internal/fileio"
	"naivebaseline/internal/labels"
	"naivebaseline/internal/pipeline"
	"naivebaseline/internal/version"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, config, or input files
	ExitRuntime  = 3 // output or other runtime failure
	ExitCanceled = 130
)

// Name is the command name used in usage and version output.
const Name = "naive-baseline"

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(Name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(stdout)
			fs.Usage()
			return ExitOK
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return ExitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(stdout, "%s version %s\n", Name, version.Version)
		return ExitOK
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}
	opts.Apply(&cfg)
	if err := cfg.Validate(); err != nil {
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	logger := cmdutil.NewLogger(stderr, cfg.LogFormat, cfg.LogLevel, opts.Quiet)
	logger.Debug("configuration", "train_terms", cfg.TrainTerms, "test_fasta", cfg.TestFasta,
		"output_dir", cfg.OutputDir, "top_k", cfg.TopK, "stdout", opts.Stdout)

	res, err := pipeline.Run(parent, pipeline.Config{
		TrainTerms: cfg.TrainTerms,
		TestFasta:  cfg.TestFasta,
		OutputDir:  cfg.OutputDir,
		TopK:       cfg.TopK,
		Stdout:     opts.Stdout,
	}, pipeline.Deps{Logger: logger, Stdout: stdout})
	if err != nil {
		code := exitCode(err)
		if code != ExitOK {
			logger.Error("run failed", "error", err)
		}
		return code
	}
	if !opts.Stdout {
		if _, err := fmt.Fprintln(stdout, res.Path); err != nil && !fileio.IsBrokenPipe(err) {
			_, _ = fmt.Fprintln(stderr, err)
			return ExitRuntime
		}
	}
	return ExitOK
}

func exitCode(err error) int {
	var ife *fileio.InputFormatError
	switch {
	case errors.Is(err, context.Canceled):
		return ExitCanceled
	case fileio.IsBrokenPipe(err):
		return ExitOK
	case errors.As(err, &ife), errors.Is(err, labels.ErrInvalidTopK):
		return ExitUsage
	default:
		return ExitRuntime
	}
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
