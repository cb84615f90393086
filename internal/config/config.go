package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variables read by Load.
const (
	EnvConfig    = "NAIVE_BASELINE_CONFIG"
	EnvTrain     = "NAIVE_BASELINE_TRAIN"
	EnvFasta     = "NAIVE_BASELINE_FASTA"
	EnvOutputDir = "NAIVE_BASELINE_OUTDIR"
	EnvTopK      = "NAIVE_BASELINE_TOP_K"
)

// Defaults.
const (
	DefaultTrainTerms = "./data/Train/train_terms.tsv"
	DefaultTestFasta  = "./data/Test/testsuperset.fasta"
	DefaultOutputDir  = "./submissions"
	DefaultTopK       = 1500
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"
)

// Config is the complete run configuration.
type Config struct {
	TrainTerms string `yaml:"train_terms"`
	TestFasta  string `yaml:"test_fasta"`
	OutputDir  string `yaml:"output_dir"`
	TopK       int    `yaml:"top_k"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
}

// Default returns a Config with every field at its default.
func Default() Config {
	return Config{
		TrainTerms: DefaultTrainTerms,
		TestFasta:  DefaultTestFasta,
		OutputDir:  DefaultOutputDir,
		TopK:       DefaultTopK,
		LogLevel:   DefaultLogLevel,
		LogFormat:  DefaultLogFormat,
	}
}

// Load builds a Config from defaults, the YAML file at path, and environment
// overrides, in that order. Keys present in the file replace defaults even
// when zero, so top_k: 0 is caught by Validate. An empty path falls back to $NAIVE_BASELINE_CONFIG;
// if that is unset too, no file is read. The result is not validated, so
// callers can layer flags on top before calling Validate.
func Load(path string) (Config, error) {
	if path == "" {
		path = os.Getenv(EnvConfig)
	}
	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return c, fmt.Errorf("read config file: %w", err)
		}
		if err := decode(data, &c); err != nil {
			return c, fmt.Errorf("parse config yaml %s: %w", path, err)
		}
	}
	if err := applyEnvironmentOverrides(&c); err != nil {
		return c, err
	}
	return c, nil
}

func decode(data []byte, c *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnvironmentOverrides(c *Config) error {
	if v := os.Getenv(EnvTrain); v != "" {
		c.TrainTerms = v
	}
	if v := os.Getenv(EnvFasta); v != "" {
		c.TestFasta = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv(EnvTopK); v != "" {
		k, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTopK, err)
		}
		c.TopK = k
	}
	return nil
}

// Validate checks a fully layered Config.
func (c Config) Validate() error {
	if c.TopK <= 0 {
		return fmt.Errorf("top_k must be > 0, got %d", c.TopK)
	}
	if strings.TrimSpace(c.TrainTerms) == "" {
		return errors.New("train_terms is required")
	}
	if strings.TrimSpace(c.TestFasta) == "" {
		return errors.New("test_fasta is required")
	}
	if c.TrainTerms == "-" && c.TestFasta == "-" {
		return errors.New("train_terms and test_fasta cannot both read stdin")
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return errors.New("output_dir is required")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	return nil
}
