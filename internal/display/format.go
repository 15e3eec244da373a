package display

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsPerHour   = 3600
	secondsPerMinute = 60
)

// FormatExtent renders a duration in seconds the way catalogers write it in
// the Format.extent column: "12m 37s", or "01h 01m 01s" once an hour is
// reached. Fractional seconds are truncated.
func FormatExtent(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	total := int64(seconds)
	hours := total / secondsPerHour
	minutes := (total % secondsPerHour) / secondsPerMinute
	secs := total % secondsPerMinute

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%02dh ", hours)
	}
	fmt.Fprintf(&b, "%02dm %02ds", minutes, secs)
	return strings.TrimSpace(b.String())
}

// FormatSeconds renders a raw duration for the media.duration column using
// the shortest representation that round-trips (757, 757.034).
func FormatSeconds(seconds float64) string {
	return strconv.FormatFloat(seconds, 'f', -1, 64)
}
