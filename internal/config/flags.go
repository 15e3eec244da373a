package config

// This file implements CLI flag parsing and help text.
// Flags are grouped into table handling, display, and utility. Flag values are
// applied after the config file and environment so the command line always wins.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// ParseFlags parses args (without the program name) into cfg. On --help or
// --version it prints and exits. On error it returns non-nil (e.g. unknown
// flag, wrong number of positional args, unreadable config file).
func ParseFlags(cfg *Config, args []string, version string) error {
	fs := flag.NewFlagSet("metagetter", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var f cliFlags
	defineTableFlags(fs, &f)
	defineDisplayFlags(fs, &f)
	defineUtilityFlags(fs, &f)

	if err := fs.Parse(args); err != nil {
		return err
	}

	if f.showHelp {
		printUsage(os.Stderr, version)
		os.Exit(0)
	}
	if f.showVersion {
		fmt.Fprintln(os.Stdout, "metagetter v"+version)
		os.Exit(0)
	}

	cfg.ConfigFile = f.configFile
	if cfg.ConfigFile == "" {
		cfg.ConfigFile = os.Getenv("METAGETTER_CONFIG")
	}
	if err := Load(cfg); err != nil {
		return err
	}

	// Only flags the user actually passed override file/env values.
	set := make(map[string]bool)
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	applyFlags(cfg, &f, set)

	if err := parsePositionalArgs(fs.Args(), cfg); err != nil {
		return err
	}
	return cfg.ExpandPaths()
}

// cliFlags holds raw flag values. They are copied into Config by applyFlags so
// that defaults, file, and env values hold unless the user passes the flag.
type cliFlags struct {
	tableExt    string
	onRowError  string
	keepGoing   bool
	color       string
	noColor     bool
	verbose     bool
	logFile     string
	check       bool
	configFile  string
	showVersion bool
	showHelp    bool
}

// defineTableFlags registers --ext, --on-row-error, -k/--keep-going.
func defineTableFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.StringVar(&f.tableExt, "ext", "", "Table file extension to discover (default: .csv)")
	fs.StringVar(&f.onRowError, "on-row-error", "", "Row failure policy: abort | continue")
	fs.BoolVar(&f.keepGoing, "keep-going", false, "Same as --on-row-error=continue")
	fs.BoolVar(&f.keepGoing, "k", false, "Same as --keep-going")
}

// defineDisplayFlags registers --color, --no-color, verbose, --log.
func defineDisplayFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.StringVar(&f.color, "color", "", "Color mode: auto | always | never")
	fs.BoolVar(&f.noColor, "no-color", false, "Disable colored logs")
	fs.BoolVar(&f.verbose, "verbose", false, "Verbose output")
	fs.BoolVar(&f.verbose, "v", false, "Same as --verbose")
	fs.StringVar(&f.logFile, "log", "", "Append logs to file")
	fs.StringVar(&f.logFile, "l", "", "Same as --log")
}

// defineUtilityFlags registers --check, --config, --version and --help.
func defineUtilityFlags(fs *flag.FlagSet, f *cliFlags) {
	fs.BoolVar(&f.check, "check", false, "Check mounts and ffprobe, then exit")
	fs.BoolVar(&f.check, "c", false, "Same as --check")
	fs.StringVar(&f.configFile, "config", "", "YAML config file")
	fs.BoolVar(&f.showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&f.showVersion, "V", false, "Same as --version")
	fs.BoolVar(&f.showHelp, "help", false, "Show this help and exit")
	fs.BoolVar(&f.showHelp, "h", false, "Same as --help")
}

// applyFlags copies explicitly set flag values into cfg.
func applyFlags(cfg *Config, f *cliFlags, set map[string]bool) {
	if set["ext"] {
		ext := strings.TrimSpace(f.tableExt)
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		cfg.TableExt = ext
	}
	if set["on-row-error"] {
		cfg.OnRowError = RowErrorPolicy(strings.ToLower(f.onRowError))
	}
	if f.keepGoing {
		cfg.OnRowError = PolicyContinue
	}
	if set["color"] {
		cfg.ColorMode = ColorMode(strings.ToLower(f.color))
	}
	if f.noColor {
		cfg.ColorMode = ColorNever
	}
	if f.verbose {
		cfg.Verbose = true
	}
	if set["log"] || set["l"] {
		cfg.LogFile = f.logFile
	}
	if f.check {
		cfg.CheckOnly = true
	}
}

// parsePositionalArgs sets the paths from positional args.
//
//	<input> <mounts> <ffprobe> <output>   normal run
//	<mounts> <ffprobe>                    accepted with --check
//
// When no positional args are given, paths from the config file or environment
// are kept.
func parsePositionalArgs(args []string, cfg *Config) error {
	switch {
	case len(args) == 0 && (cfg.InputPath != "" || cfg.CheckOnly):
		return nil
	case len(args) == 4:
		cfg.InputPath = NormalizeDirArg(args[0])
		cfg.Mounts = ParseMounts(args[1])
		cfg.ProbePath = args[2]
		cfg.OutputDir = NormalizeDirArg(args[3])
		return nil
	case len(args) == 2 && cfg.CheckOnly:
		cfg.Mounts = ParseMounts(args[0])
		cfg.ProbePath = args[1]
		return nil
	}
	return fmt.Errorf("need exactly <input> <mounts> <ffprobe> <output> (got %d arguments)", len(args))
}

// printUsage writes the help text. Column-aligned for readability.
func printUsage(w io.Writer, version string) {
	const col1 = 30 // width of "  -x, --long-name <arg>  "
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "metagetter v" + version + " - add media technical metadata to CSV tables"},
		{"", ""},
		{"  metagetter [OPTIONS] <input> <mounts> <ffprobe> <output>", ""},
		{"", ""},
		{"Arguments", ""},
		{"  <input>", "CSV file, or directory scanned recursively"},
		{"  <mounts>", "Comma-separated media roots prepended to 'File Name'"},
		{"  <ffprobe>", "Path to the ffprobe executable"},
		{"  <output>", "Directory for the updated CSV files"},
		{"", ""},
		{"Tables", ""},
		{"  --ext <ext>", "Table file extension (default: .csv)"},
		{"  --on-row-error <policy>", "abort | continue (default: abort)"},
		{"  -k, --keep-going", "Same as --on-row-error=continue"},
		{"", ""},
		{"Display", ""},
		{"  --color <mode>", "auto | always | never (default: auto)"},
		{"  --no-color", "Disable colored logs"},
		{"  -v, --verbose", "Verbose output"},
		{"", ""},
		{"Utility", ""},
		{"  -l, --log <path>", "Append logs to file"},
		{"  --config <path>", "YAML config file (METAGETTER_CONFIG)"},
		{"  -c, --check", "Check mounts and ffprobe, then exit"},
		{"  -V, --version", "Print version and exit"},
		{"  -h, --help", "Show this help and exit"},
		{"", ""},
		{"Exit codes: 0 ok, 101 missing path, 102 bad ffprobe, 103 read/write or enrichment failure", ""},
	}

	for _, l := range lines {
		if l.flags == "" && l.desc == "" {
			fmt.Fprintln(w)
			continue
		}
		if l.desc == "" {
			fmt.Fprintln(w, l.flags)
			continue
		}
		if l.flags == "" {
			fmt.Fprintln(w, l.desc)
			continue
		}
		padding := col1 - len(l.flags)
		if padding < 1 {
			padding = 1
		}
		fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
	}
}
