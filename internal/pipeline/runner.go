package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/backmassage/metagetter/internal/config"
	"github.com/backmassage/metagetter/internal/enrich"
	"github.com/backmassage/metagetter/internal/logging"
	"github.com/backmassage/metagetter/internal/naming"
	"github.com/backmassage/metagetter/internal/probe"
	"github.com/backmassage/metagetter/internal/table"
	"github.com/google/uuid"
)

// errInterrupted stops the batch when the run context is canceled.
var errInterrupted = errors.New("interrupted")

// rowError is a row failure that aborts the batch under the abort policy.
type rowError struct {
	table string
	row   int
	err   error
}

func (e *rowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.table, e.row, e.err)
}

func (e *rowError) Unwrap() error { return e.err }

// Run is the top-level batch entry point. It discovers tables under
// cfg.InputPath, enriches and writes each one in order, and returns
// aggregate stats. Pre-flight checks are the caller's job.
//
// A table that cannot be read or written is logged and skipped. A row
// failure aborts the batch under config.PolicyAbort and is logged and
// counted under config.PolicyContinue.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, prober probe.Prober) RunStats {
	stats := RunStats{RunID: uuid.NewString()}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		log.Error("Cannot create output directory %s: %v", cfg.OutputDir, err)
		stats.SetupFailed = true
		return stats
	}

	files, err := Inputs(cfg.InputPath, cfg.TableExt, cfg.OutputDir)
	if err != nil {
		log.Error("Table discovery failed for %s: %v", cfg.InputPath, err)
		stats.SetupFailed = true
		return stats
	}
	stats.Tables = len(files)
	resolver := naming.NewCollisionResolver()

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			stats.Interrupted = true
			break
		}

		err := processTable(ctx, cfg, log, prober, path, resolver, &stats)
		switch {
		case err == nil:
		case errors.Is(err, errInterrupted):
			stats.Interrupted = true
		case isRowAbort(err):
			stats.Aborted = true
			log.Error("Aborting batch: %v", err)
		default:
			stats.TablesFailed++
			log.Error("Table skipped: %v", err)
		}
		if stats.Interrupted || stats.Aborted {
			break
		}
	}

	if stats.Interrupted {
		log.Warn("Interrupted")
	}
	logSummary(log, &stats)
	return stats
}

func isRowAbort(err error) bool {
	var re *rowError
	return errors.As(err, &re)
}

// processTable reads one table, enriches every data row, and writes it to
// the output directory. Nothing is written when it returns an error.
func processTable(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	prober probe.Prober,
	path string,
	resolver *naming.CollisionResolver,
	stats *RunStats,
) error {
	log.Info("[%d/%d] %s", stats.Current, stats.Tables, path)

	tbl, err := table.Read(path)
	if err != nil {
		return fmt.Errorf("read table %s: %w", path, err)
	}

	name := naming.OutputName(path)
	outName := resolver.Resolve(path, name)
	if outName != name {
		log.Warn("Output name %s already used in this run, writing %s", name, outName)
	}

	if tbl.Header != nil {
		if err := enrichTable(ctx, cfg, log, prober, name, tbl, stats); err != nil {
			return err
		}
	} else {
		log.Warn("Empty table, copying unchanged")
	}

	if err := table.WriteFile(cfg.OutputDir, outName, tbl); err != nil {
		return fmt.Errorf("write table %s: %w", naming.OutputPath(cfg.OutputDir, outName), err)
	}
	stats.Written++
	log.Success("Wrote %s (%d rows)", naming.OutputPath(cfg.OutputDir, outName), len(tbl.Rows))
	return nil
}

// enrichTable augments the header and enriches each row in order.
func enrichTable(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	prober probe.Prober,
	name string,
	tbl *table.Table,
	stats *RunStats,
) error {
	cols, present := tbl.Prepare()
	if present {
		log.Debug(cfg.Verbose, "  Media columns already present")
	} else {
		log.Debug(cfg.Verbose, "  Appended columns: %s", strings.Join(table.DerivedHeaders, ", "))
	}
	if !cols.HasFileNameIndex() {
		log.Warn("  No '%s' column, rows pass through unchanged", table.HeaderFileName)
	}

	enricher := enrich.New(cols, cfg.Mounts, prober)
	bar := newRowProgress(len(tbl.Rows), name, cfg.Verbose)
	defer bar.Done()

	for i, row := range tbl.Rows {
		if ctx.Err() != nil {
			return errInterrupted
		}
		// Row numbers count the header as row 1, matching what a
		// spreadsheet shows.
		rowNum := i + 2

		outcome, err := enricher.Enrich(ctx, row)
		bar.Step()
		if err != nil {
			if ctx.Err() != nil {
				return errInterrupted
			}
			stats.RowsFailed++
			if cfg.OnRowError == config.PolicyAbort {
				return &rowError{table: name, row: rowNum, err: err}
			}
			bar.Clear()
			log.Error("%s row %d: %v", name, rowNum, err)
			continue
		}

		if outcome == enrich.Enriched {
			stats.RowsEnriched++
		} else {
			stats.RowsSkipped++
		}
		log.Debug(cfg.Verbose, "  Row %d: %s", rowNum, outcome)
	}
	return nil
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("Run %s", stats.RunID)
	log.Info("Found %d table(s) in %s", stats.Tables, cfg.InputPath)
	log.Info("Mounts: %s", strings.Join(cfg.Mounts, ", "))
	log.Info("ffprobe: %s", cfg.ProbePath)
	log.Info("Out: %s", cfg.OutputDir)
	log.Info("Row errors: %s", cfg.OnRowError)
	log.Info("")
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d tables written, %d failed; %d rows enriched, %d skipped, %d failed",
		stats.Written, stats.TablesFailed, stats.RowsEnriched, stats.RowsSkipped, stats.RowsFailed)
	if stats.ExitCode() == ExitOK {
		log.Success("Run %s finished", stats.RunID)
	} else {
		log.Error("Run %s finished with errors", stats.RunID)
	}
}
