// Command metagetter is the CLI entrypoint for the media metadata enricher.
//
// It parses flags, validates configuration, runs the pre-flight checks, and
// either prints diagnostics (--check) or enriches every table under the
// input path.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/backmassage/metagetter/internal/check"
	"github.com/backmassage/metagetter/internal/config"
	"github.com/backmassage/metagetter/internal/display"
	"github.com/backmassage/metagetter/internal/logging"
	"github.com/backmassage/metagetter/internal/pipeline"
	"github.com/backmassage/metagetter/internal/probe"
)

// version and commit are injected at build time via -ldflags.
var (
	version = "1.0.0"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Phase 1: Bootstrap. The logger doesn't exist yet, so errors go
	// directly to stderr via fmt.
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:], version); err != nil {
		fmt.Fprintf(os.Stderr, "metagetter: %v\n", err)
		fmt.Fprintln(os.Stderr, "Try 'metagetter --help' for usage.")
		return 1
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "metagetter: %v\n", err)
		return 1
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "metagetter: %v\n", err)
		return 1
	}
	defer log.Close()

	// Phase 2: Logger available. All output goes through log from here on.
	display.PrintBanner(os.Stdout)

	// Cancel on SIGINT/SIGTERM so the pipeline stops between rows without
	// writing the table it was working on.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	prober := probe.New(cfg.ProbePath)

	if cfg.CheckOnly {
		return pipeline.ExitCodeFor(check.RunCheck(ctx, &cfg, log, prober))
	}

	log.Info("=== metagetter v%s (%s) ===", version, commit)
	log.Info("In:  %s", cfg.InputPath)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("")

	// Fail fast, before any table is touched.
	if err := check.CheckDeps(ctx, &cfg, prober); err != nil {
		log.Error("%v", err)
		return pipeline.ExitCodeFor(err)
	}
	if inAbs, outAbs, ok := absPaths(cfg.InputPath, cfg.OutputDir); ok {
		if err := cfg.ValidatePaths(inAbs, outAbs); err != nil {
			log.Warn("%v; it is skipped during discovery", err)
		}
	}

	stats := pipeline.Run(ctx, &cfg, log, prober)
	return stats.ExitCode()
}

// absPaths resolves input and output for the nesting check. The output
// directory may not exist yet, in which case only Abs is applied.
func absPaths(input, output string) (string, string, bool) {
	in, err := filepath.Abs(input)
	if err != nil {
		return "", "", false
	}
	if r, err := filepath.EvalSymlinks(in); err == nil {
		in = r
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return "", "", false
	}
	if r, err := filepath.EvalSymlinks(out); err == nil {
		out = r
	}
	return in, out, true
}
