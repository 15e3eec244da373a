// Package term provides color enablement and terminal detection.
//
// Color output is driven by fatih/color's package-level switch. [Configure]
// sets it once during startup (from [logging.NewLogger]); every *color.Color
// then prints plain text when colors are disabled.
package term

import (
	"os"
	"strings"

	"github.com/backmassage/metagetter/internal/config"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Configure resolves the color mode and enables or disables colored output
// for the whole process.
func Configure(mode config.ColorMode) {
	color.NoColor = !resolve(mode)
}

// Enabled reports whether colors are currently active.
func Enabled() bool { return !color.NoColor }

// resolve determines whether colors should be enabled based on the configured
// mode, TTY detection, and the NO_COLOR env var (https://no-color.org).
func resolve(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default: // ColorAuto
		return IsTerminal(os.Stdout) &&
			os.Getenv("NO_COLOR") == "" &&
			strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
}

// IsTerminal reports whether f is attached to a TTY.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
