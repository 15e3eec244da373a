// Package probe adapts ffprobe to the enricher. One JSON call per file yields
// a [MediaInfo] with the container duration, format name, and per-stream
// dimensions. Failures are wrapped in [ProbeError] with a sanitized,
// user-facing detail string.
//
// Content-type detection lives here too, since it is the other question the
// enricher asks about a resolved media file: [DetectContentType] sniffs magic
// bytes and [IsAudioVideo] gates whether probe results are written at all.
package probe
