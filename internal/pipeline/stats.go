package pipeline

import (
	"errors"

	"github.com/backmassage/metagetter/internal/check"
)

// Process exit codes.
const (
	ExitOK            = 0
	ExitPathNotFound  = 101 // input, mount, or media path does not exist
	ExitProbeUnusable = 102 // probe tool invalid or unreachable
	ExitBatchFailure  = 103 // read/write or enrichment failure during the batch
)

// RunStats tracks aggregate table and row counters across a batch run.
type RunStats struct {
	RunID string

	Tables       int // discovered
	Current      int
	Written      int
	TablesFailed int

	RowsEnriched int
	RowsSkipped  int
	RowsFailed   int

	// Aborted is set when a row failure stopped the batch under the abort policy.
	Aborted bool
	// Interrupted is set when the context was canceled mid-run.
	Interrupted bool
	// SetupFailed is set when discovery or output directory creation failed.
	SetupFailed bool
}

// ExitCode maps the run's outcome to a process exit code. Row failures
// tolerated under the continue policy do not fail the run.
func (s RunStats) ExitCode() int {
	if s.SetupFailed || s.TablesFailed > 0 || s.Aborted || s.Interrupted {
		return ExitBatchFailure
	}
	return ExitOK
}

// ExitCodeFor maps a pre-flight error from the check package to an exit code.
func ExitCodeFor(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, check.ErrPathNotFound):
		return ExitPathNotFound
	case errors.Is(err, check.ErrProbeUnusable):
		return ExitProbeUnusable
	}
	return ExitBatchFailure
}
