package pipeline

import (
	"io"
	"os"

	"github.com/backmassage/metagetter/internal/term"
	"github.com/schollz/progressbar/v3"
)

// rowProgress draws a per-table bar over data rows on a TTY. On other
// outputs, or in verbose mode where every row is logged, it is a no-op.
type rowProgress struct {
	bar *progressbar.ProgressBar
}

func newRowProgress(rows int, name string, verbose bool) *rowProgress {
	if verbose || rows == 0 || !term.IsTerminal(os.Stderr) {
		return &rowProgress{}
	}
	return &rowProgress{bar: newBar(os.Stderr, rows, name)}
}

func newBar(w io.Writer, rows int, name string) *progressbar.ProgressBar {
	return progressbar.NewOptions(rows,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("  "+name),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(30),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionEnableColorCodes(term.Enabled()),
	)
}

// Step advances the bar by one row.
func (p *rowProgress) Step() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Clear erases the bar so a log line can be printed cleanly.
func (p *rowProgress) Clear() {
	if p.bar != nil {
		_ = p.bar.Clear()
	}
}

// Done finishes and erases the bar.
func (p *rowProgress) Done() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
