package probe

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/floostack/transcoder"
	"github.com/floostack/transcoder/ffmpeg"
)

// FFprobe probes files with the ffprobe binary at BinPath.
type FFprobe struct {
	BinPath string
}

// New returns an FFprobe for the executable at binPath.
func New(binPath string) *FFprobe {
	return &FFprobe{BinPath: binPath}
}

// Probe runs ffprobe with -show_format -show_streams -show_error against
// path and converts the result. Any failure, including a canceled ctx, comes
// back as a *ProbeError naming path.
func (p *FFprobe) Probe(ctx context.Context, path string) (*MediaInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewProbeError(path, err)
	}
	cfg := &ffmpeg.Config{FfprobeBinPath: p.BinPath}
	md, err := ffmpeg.New(cfg).Input(path).GetMetadata()
	if err != nil {
		return nil, NewProbeError(path, err)
	}
	return fromMetadata(md), nil
}

// Version runs "<BinPath> -version" and returns the first line of output,
// e.g. "ffprobe version 6.1.1 Copyright (c) 2007-2023 the FFmpeg developers".
func (p *FFprobe) Version(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, p.BinPath, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("%s -version: %w", p.BinPath, err)
	}
	line, _, _ := bufio.NewReader(bytes.NewReader(out)).ReadLine()
	first := strings.TrimSpace(string(line))
	if !strings.Contains(strings.ToLower(first), "version") {
		return "", fmt.Errorf("%s -version: unexpected output %q", p.BinPath, first)
	}
	return first, nil
}

// fromMetadata converts transcoder metadata into a MediaInfo. ffprobe
// reports the duration as a decimal string; "N/A" or an empty value leaves
// HasDuration false.
func fromMetadata(md transcoder.Metadata) *MediaInfo {
	info := &MediaInfo{}
	if md == nil {
		return info
	}
	if f := md.GetFormat(); f != nil {
		info.FormatName = f.GetFormatName()
		if d, err := strconv.ParseFloat(strings.TrimSpace(f.GetDuration()), 64); err == nil && d >= 0 && !math.IsInf(d, 0) {
			info.Duration = d
			info.HasDuration = true
		}
	}
	for _, s := range md.GetStreams() {
		info.Streams = append(info.Streams, Stream{
			CodecType: s.GetCodecType(),
			Width:     s.GetWidth(),
			Height:    s.GetHeight(),
		})
	}
	return info
}
