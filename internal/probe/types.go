package probe

import "context"

// Stream holds the parts of one ffprobe stream the enricher reads.
type Stream struct {
	CodecType string
	Width     int
	Height    int
}

// MediaInfo is the parsed result of a single ffprobe call.
// HasDuration is false when ffprobe reported no usable container duration.
type MediaInfo struct {
	FormatName  string
	Duration    float64
	HasDuration bool
	Streams     []Stream
}

// Prober is the contract the enricher and pipeline depend on. Tests supply
// fakes; production code uses [FFprobe].
type Prober interface {
	// Probe inspects the file at path. Failures are returned as *ProbeError.
	Probe(ctx context.Context, path string) (*MediaInfo, error)
	// Version runs the tool's version query and returns its first line.
	Version(ctx context.Context) (string, error)
}
