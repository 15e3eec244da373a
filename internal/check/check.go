// Package check provides the pre-flight validation run before any table is
// touched (CheckDeps) and the interactive --check diagnostics (RunCheck).
package check

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/backmassage/metagetter/internal/config"
	"github.com/backmassage/metagetter/internal/mount"
	"github.com/backmassage/metagetter/internal/probe"
)

// Sentinel errors returned by CheckDeps. The pipeline maps them to exit codes.
var (
	ErrPathNotFound  = errors.New("Directory/file must exist")
	ErrProbeUnusable = errors.New("is not valid path to ffprobe")
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// CheckPaths verifies that input (when non-empty) and every mount exist.
// The first missing path is returned wrapped in ErrPathNotFound.
func CheckPaths(input string, mounts mount.List) error {
	if input != "" {
		if _, err := os.Stat(input); err != nil {
			return fmt.Errorf("%w: %s", ErrPathNotFound, input)
		}
	}
	if missing := mount.Missing(mounts); len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrPathNotFound, missing[0])
	}
	return nil
}

// CheckProbe asks p for its version. The version line is returned on
// success; any failure is wrapped in ErrProbeUnusable naming binPath.
func CheckProbe(ctx context.Context, p probe.Prober, binPath string) (string, error) {
	v, err := p.Version(ctx)
	if err != nil {
		return "", fmt.Errorf("%s %w (%v)", binPath, ErrProbeUnusable, err)
	}
	return v, nil
}

// CheckDeps is the pre-pipeline validation: input and mounts must exist and
// the probe tool must answer a version query. Paths are checked first so a
// missing path wins over a bad probe.
func CheckDeps(ctx context.Context, cfg *config.Config, p probe.Prober) error {
	if err := CheckPaths(cfg.InputPath, cfg.Mounts); err != nil {
		return err
	}
	_, err := CheckProbe(ctx, p, cfg.ProbePath)
	return err
}

// RunCheck runs the --check flow: prints the probe version and the status of
// every mount, then returns the first failure (nil when all are OK). Unlike
// CheckDeps it reports every problem before returning.
func RunCheck(ctx context.Context, cfg *config.Config, log Logger, p probe.Prober) error {
	log.Info("=== System Check ===")

	var first error
	if v, err := CheckProbe(ctx, p, cfg.ProbePath); err != nil {
		log.Error("%v", err)
		first = err
	} else {
		log.Success("ffprobe: %s", v)
	}

	missing := make(map[string]bool)
	for _, m := range mount.Missing(cfg.Mounts) {
		missing[m] = true
	}
	for _, m := range cfg.Mounts {
		if missing[m] {
			log.Error("Mount missing: %s", m)
			if first == nil {
				first = fmt.Errorf("%w: %s", ErrPathNotFound, m)
			}
			continue
		}
		log.Success("Mount OK: %s", m)
	}

	if cfg.InputPath != "" {
		if err := CheckPaths(cfg.InputPath, nil); err != nil {
			log.Error("%v", err)
			if first == nil {
				first = err
			}
		} else {
			log.Success("Input OK: %s", cfg.InputPath)
		}
	}
	return first
}
