// internal/cli/usage.go
package cli

import (
	"flag"
	"fmt"

	"naivebaseline/internal/version"
)

// Usage installs the help text on fs.
func Usage(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – frequency baseline for GO term prediction\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s [flags] [TRAIN_TSV [TEST_FASTA]]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintf(out, "  -t, --train file            Training terms TSV with EntryID and term columns [%s]\n", def("train"))
		fmt.Fprintf(out, "  -s, --sequences file        Test FASTA, .gz accepted, '-' for STDIN [%s]\n", def("sequences"))
		fmt.Fprintln(out, "  -c, --config file           YAML config (or $NAIVE_BASELINE_CONFIG)")

		fmt.Fprintln(out, "\nPrediction:")
		fmt.Fprintf(out, "  -k, --top-k int             Most frequent terms predicted for every protein [%s]\n", def("top-k"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --outdir dir            Directory for naive_baseline_<timestamp>.tsv [%s]\n", def("outdir"))
		fmt.Fprintf(out, "      --stdout                Write the submission to STDOUT instead [%s]\n", def("stdout"))

		fmt.Fprintln(out, "\nLogging:")
		fmt.Fprintf(out, "      --log-format string     text | json [%s]\n", def("log-format"))
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintf(out, "  -q, --quiet                 Only log warnings and errors [%s]\n", def("quiet"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help and exit")
	}
}
