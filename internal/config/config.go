// Package config holds runtime configuration: defaults, environment and file
// loading, CLI flag parsing, and validation. A Config is built once in main and
// passed by pointer to every package that needs it; nothing reads process-wide
// state after startup.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/mitchellh/go-homedir"
)

// --- Enum types for validated string fields ---

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// RowErrorPolicy decides what a row-level enrichment failure does to the batch.
type RowErrorPolicy string

const (
	// PolicyAbort stops the batch on the first failing row; the table is not written.
	PolicyAbort RowErrorPolicy = "abort"
	// PolicyContinue logs the failure, keeps the partially enriched row, and moves on.
	PolicyContinue RowErrorPolicy = "continue"
)

// Config holds all runtime settings. It is populated by [DefaultConfig], then
// by an optional YAML file and METAGETTER_* environment variables, and finally
// by [ParseFlags]. Fields are grouped by concern.
type Config struct {
	// Paths (set from positional args).
	InputPath string   `yaml:"input" env:"METAGETTER_INPUT"`
	Mounts    []string `yaml:"mounts" env:"METAGETTER_MOUNTS" env-separator:"," validate:"required,min=1,dive,required"`
	ProbePath string   `yaml:"ffprobe" env:"METAGETTER_FFPROBE" validate:"required"`
	OutputDir string   `yaml:"output" env:"METAGETTER_OUTPUT"`

	// Table handling.
	TableExt   string         `yaml:"table_ext" env:"METAGETTER_TABLE_EXT" validate:"required,startswith=."` // Default: ".csv".
	OnRowError RowErrorPolicy `yaml:"on_row_error" env:"METAGETTER_ON_ROW_ERROR" validate:"oneof=abort continue"`

	// Display and logging.
	Verbose   bool      `yaml:"verbose" env:"METAGETTER_VERBOSE"`
	ColorMode ColorMode `yaml:"color" env:"METAGETTER_COLOR" validate:"oneof=auto always never"`
	LogFile   string    `yaml:"log_file" env:"METAGETTER_LOG_FILE"`
	CheckOnly bool      `yaml:"-"`

	// ConfigFile is the optional YAML file named by --config or METAGETTER_CONFIG.
	ConfigFile string `yaml:"-"`
}

// DefaultConfig returns a Config with every default set. Used as the base
// before [Load] and [ParseFlags] apply overrides.
func DefaultConfig() Config {
	return Config{
		TableExt:   ".csv",
		OnRowError: PolicyAbort,
		Verbose:    false,
		ColorMode:  ColorAuto,
		CheckOnly:  false,
	}
}

// Load applies cfg.ConfigFile (when set) and then METAGETTER_* environment
// variables on top of cfg. Fields without a matching variable keep their value.
func Load(cfg *Config) error {
	if cfg.ConfigFile != "" {
		path, err := homedir.Expand(cfg.ConfigFile)
		if err != nil {
			return fmt.Errorf("expand config path %q: %w", cfg.ConfigFile, err)
		}
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return fmt.Errorf("load config file %q: %w", path, err)
		}
		return nil
	}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	return nil
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// ParseMounts splits a comma-separated mount list, trimming whitespace and
// dropping empty entries. Order is preserved: the first mount wins.
func ParseMounts(raw string) []string {
	var mounts []string
	for _, m := range strings.Split(raw, ",") {
		m = strings.TrimSpace(m)
		if m == "" {
			continue
		}
		mounts = append(mounts, NormalizeDirArg(m))
	}
	return mounts
}

// ExpandPaths replaces a leading "~" in every path setting with the user's
// home directory.
func (c *Config) ExpandPaths() error {
	for _, p := range []*string{&c.InputPath, &c.ProbePath, &c.OutputDir, &c.LogFile} {
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return fmt.Errorf("expand %q: %w", *p, err)
		}
		*p = expanded
	}
	for i, m := range c.Mounts {
		expanded, err := homedir.Expand(m)
		if err != nil {
			return fmt.Errorf("expand mount %q: %w", m, err)
		}
		c.Mounts[i] = expanded
	}
	return nil
}

var validate = validator.New()

// Validate checks enum fields, the mount list, and the probe path. When not in
// CheckOnly mode it also requires the input path and output directory.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return describeFieldError(verrs[0])
		}
		return err
	}
	if c.CheckOnly {
		return nil
	}
	if c.InputPath == "" || c.OutputDir == "" {
		return errors.New("need input path, mount list, ffprobe path, and output dir")
	}
	return nil
}

// describeFieldError turns a validator failure into a one-line message naming
// the field the user actually sets.
func describeFieldError(fe validator.FieldError) error {
	switch fe.StructField() {
	case "Mounts":
		return errors.New("need at least one media mount")
	case "ProbePath":
		return errors.New("need the path to the ffprobe executable")
	case "TableExt":
		return fmt.Errorf("invalid table extension %q (use e.g. '.csv')", fe.Value())
	case "OnRowError":
		return fmt.Errorf("invalid row error policy %q (use 'abort' or 'continue')", fe.Value())
	case "ColorMode":
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", fe.Value())
	}
	return fmt.Errorf("invalid %s: failed %q check", fe.Field(), fe.Tag())
}

// ValidatePaths reports whether the resolved output directory lives inside
// (or equals) the resolved input directory. Both arguments must be absolute,
// symlink-resolved paths. The pipeline uses this to prune its own output from
// discovery rather than rejecting the layout.
func (c *Config) ValidatePaths(inputAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == inputAbs || strings.HasPrefix(outputAbs+sep, inputAbs+sep) {
		return errors.New("output directory is inside input directory")
	}
	return nil
}
