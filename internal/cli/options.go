// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"naivebaseline/internal/cliutil"
	"naivebaseline/internal/config"
)

// Options holds all CLI flags and arguments.
type Options struct {
	ConfigPath string

	// Input
	TrainTerms string
	TestFasta  string

	// Prediction
	TopK int

	// Output
	OutputDir string
	Stdout    bool

	// Logging
	LogFormat string
	LogLevel  string
	Quiet     bool

	Version bool

	set map[string]bool // flags and positionals actually given
}

// NewFlagSet returns a configured FlagSet with the shared usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	Usage(fs, name)
	return fs
}

// Register wires every flag onto fs. Long names have single-letter aliases
// bound to the same variable.
func Register(fs *flag.FlagSet, o *Options) (help *bool) {
	help = new(bool)

	fs.StringVar(&o.ConfigPath, "config", "", "YAML config file")
	fs.StringVar(&o.ConfigPath, "c", "", "alias of --config")

	fs.StringVar(&o.TrainTerms, "train", config.DefaultTrainTerms, "training terms TSV (EntryID, term)")
	fs.StringVar(&o.TrainTerms, "t", config.DefaultTrainTerms, "alias of --train")
	fs.StringVar(&o.TestFasta, "sequences", config.DefaultTestFasta, "test FASTA or '-'")
	fs.StringVar(&o.TestFasta, "s", config.DefaultTestFasta, "alias of --sequences")

	fs.IntVar(&o.TopK, "top-k", config.DefaultTopK, "number of most frequent terms to predict")
	fs.IntVar(&o.TopK, "k", config.DefaultTopK, "alias of --top-k")

	fs.StringVar(&o.OutputDir, "outdir", config.DefaultOutputDir, "submission directory")
	fs.StringVar(&o.OutputDir, "o", config.DefaultOutputDir, "alias of --outdir")
	fs.BoolVar(&o.Stdout, "stdout", false, "write the submission to stdout")

	fs.StringVar(&o.LogFormat, "log-format", config.DefaultLogFormat, "log format: text | json")
	fs.StringVar(&o.LogLevel, "log-level", config.DefaultLogLevel, "log level: debug | info | warn | error")
	fs.BoolVar(&o.Quiet, "quiet", false, "only log warnings and errors")
	fs.BoolVar(&o.Quiet, "q", false, "alias of --quiet")

	fs.BoolVar(&o.Version, "version", false, "print version and exit")
	fs.BoolVar(&o.Version, "v", false, "alias of --version")
	fs.BoolVar(help, "help", false, "show help")
	fs.BoolVar(help, "h", false, "alias of --help")
	return help
}

// ParseArgs registers and parses all flags. Up to two positionals name the
// training file and the test FASTA; flags may appear before or after them.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	help := Register(fs, &opt)

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if *help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	opt.set = cliutil.SetFlags(fs)

	if len(posArgs) > 2 {
		return opt, fmt.Errorf("expected at most 2 positional arguments (TRAIN_TSV [TEST_FASTA]), got %d", len(posArgs))
	}
	if len(posArgs) >= 1 {
		if opt.given("train", "t") {
			return opt, errors.New("training file given both as --train and as a positional argument")
		}
		opt.TrainTerms = posArgs[0]
		opt.set["train"] = true
	}
	if len(posArgs) == 2 {
		if opt.given("sequences", "s") {
			return opt, errors.New("test FASTA given both as --sequences and as a positional argument")
		}
		opt.TestFasta = posArgs[1]
		opt.set["sequences"] = true
	}

	if opt.given("top-k", "k") && opt.TopK <= 0 {
		return opt, errors.New("--top-k must be > 0")
	}
	if opt.given("log-format") && opt.LogFormat != "text" && opt.LogFormat != "json" {
		return opt, fmt.Errorf("invalid --log-format %q", opt.LogFormat)
	}
	return opt, nil
}

func (o Options) given(names ...string) bool {
	for _, n := range names {
		if o.set[n] {
			return true
		}
	}
	return false
}

// Apply overlays explicitly given flags onto cfg. Flags left at their
// defaults do not override values from the config file or environment.
func (o Options) Apply(cfg *config.Config) {
	if o.given("train", "t") {
		cfg.TrainTerms = o.TrainTerms
	}
	if o.given("sequences", "s") {
		cfg.TestFasta = o.TestFasta
	}
	if o.given("top-k", "k") {
		cfg.TopK = o.TopK
	}
	if o.given("outdir", "o") {
		cfg.OutputDir = o.OutputDir
	}
	if o.given("log-format") {
		cfg.LogFormat = o.LogFormat
	}
	if o.given("log-level") {
		cfg.LogLevel = o.LogLevel
	}
}
