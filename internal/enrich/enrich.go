// Package enrich fills the media.* cells of one data row from a probe of the
// media file its 'File Name' cell references.
package enrich

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/backmassage/metagetter/internal/display"
	"github.com/backmassage/metagetter/internal/mount"
	"github.com/backmassage/metagetter/internal/probe"
	"github.com/backmassage/metagetter/internal/table"
)

// ObjectTypeCollection marks rows that describe a collection rather than a
// playable file.
const ObjectTypeCollection = "Collection"

// legacyMarker in a file reference requires the file to be located before
// probing.
const legacyMarker = "~"

// Outcome is what Enrich did with one row.
type Outcome int

const (
	// NotApplicable: no file-name column, a Collection row, or a blank reference.
	NotApplicable Outcome = iota
	// AlreadyPresent: every derived cell was filled before the run.
	AlreadyPresent
	// NotAudioVideo: the file was probed but is not audio or video.
	NotAudioVideo
	// Enriched: derived cells were written.
	Enriched
)

func (o Outcome) String() string {
	switch o {
	case NotApplicable:
		return "not applicable"
	case AlreadyPresent:
		return "already present"
	case NotAudioVideo:
		return "not audio/video"
	case Enriched:
		return "enriched"
	}
	return "unknown"
}

// FileFormatError is a file reference without an extension.
type FileFormatError struct {
	FileName string
}

func (e *FileFormatError) Error() string {
	return "File '" + e.FileName + "' is missing an extension indicating its media type"
}

// ContentTyper returns the MIME type of the file at path.
type ContentTyper func(path string) (string, error)

// Enricher enriches the rows of one table. Build a new one per table since
// the column map belongs to that table's header.
type Enricher struct {
	cols   table.ColumnMap
	mounts mount.List
	prober probe.Prober
	detect ContentTyper
}

// New returns an Enricher that resolves references against mounts, probes
// with prober, and classifies files with [probe.DetectContentType].
func New(cols table.ColumnMap, mounts mount.List, prober probe.Prober) *Enricher {
	return &Enricher{cols: cols, mounts: mounts, prober: prober, detect: probe.DetectContentType}
}

// Enrich fills the blank derived cells of row in place. On error the row
// keeps whatever was written before the failure. Errors are
// *FileFormatError, *mount.NotFoundError, *probe.ProbeError, or a wrapped
// content-detection error.
func (e *Enricher) Enrich(ctx context.Context, row table.Row) (Outcome, error) {
	if !e.cols.HasFileNameIndex() {
		return NotApplicable, nil
	}
	if row.Cell(e.cols.ObjectTypeIndex()) == ObjectTypeCollection {
		return NotApplicable, nil
	}
	ref := strings.TrimSpace(row.Cell(e.cols.FileNameIndex()))
	if ref == "" {
		return NotApplicable, nil
	}
	if e.alreadyEnriched(row) {
		return AlreadyPresent, nil
	}
	if !strings.Contains(ref, ".") {
		return NotApplicable, &FileFormatError{FileName: ref}
	}

	var path string
	if strings.Contains(ref, legacyMarker) {
		p, err := mount.Resolve(e.mounts, ref)
		if err != nil {
			return NotApplicable, err
		}
		path = p
	} else {
		path = mount.ResolveOrFirst(e.mounts, ref)
	}

	info, err := e.prober.Probe(ctx, path)
	if err != nil {
		return NotApplicable, err
	}

	contentType, err := e.detect(path)
	if err != nil {
		return NotApplicable, fmt.Errorf("detect content type of '%s': %w", path, err)
	}
	if !probe.IsAudioVideo(contentType) {
		return NotAudioVideo, nil
	}

	e.apply(row, info, contentType)
	return Enriched, nil
}

// alreadyEnriched reports whether every derived cell is filled and the
// extent cell, when the header has one, is filled too.
func (e *Enricher) alreadyEnriched(row table.Row) bool {
	for _, f := range table.DerivedFields {
		if !e.cols.Has(f) || row.IsBlank(e.cols.Index(f)) {
			return false
		}
	}
	return !e.cols.Has(table.Extent) || !row.IsBlank(e.cols.ExtentIndex())
}

// apply writes probe results into cells that were blank on entry. For width
// and height, later streams overwrite earlier ones.
func (e *Enricher) apply(row table.Row, info *probe.MediaInfo, contentType string) {
	blank := make(map[table.Field]bool, len(table.DerivedFields)+1)
	for _, f := range append([]table.Field{table.Extent}, table.DerivedFields...) {
		blank[f] = e.cols.Has(f) && row.IsBlank(e.cols.Index(f))
	}
	set := func(f table.Field, v string) {
		if blank[f] {
			row.Set(e.cols.Index(f), v)
		}
	}

	if info.HasDuration {
		set(table.MediaDuration, display.FormatSeconds(info.Duration))
		set(table.Extent, display.FormatExtent(info.Duration))
	}
	set(table.MediaFormat, contentType)
	for _, s := range info.Streams {
		if s.Width != 0 {
			set(table.MediaWidth, strconv.Itoa(s.Width))
		}
		if s.Height != 0 {
			set(table.MediaHeight, strconv.Itoa(s.Height))
		}
	}
}
