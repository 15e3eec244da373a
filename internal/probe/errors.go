package probe

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ProbeError is a failed probe of one media file. Detail is the sanitized
// cause shown to users; Err keeps the raw cause for errors.Is/As.
type ProbeError struct {
	File   string
	Detail string
	Err    error
}

func (e *ProbeError) Error() string {
	return "Unable to read media file '" + e.File + "': " + e.Detail
}

func (e *ProbeError) Unwrap() error { return e.Err }

// NewProbeError wraps err for file with a sanitized detail string.
func NewProbeError(file string, err error) *ProbeError {
	return &ProbeError{File: file, Detail: Sanitize(err), Err: err}
}

// checkStdoutHint replaces the tool's "Check stdout." advice, which points
// at output the user never sees.
const checkStdoutHint = "\nRun ffprobe directly against the file to see its diagnostic output."

var (
	reCheckStdout = regexp.MustCompile(`(?i)\s*check stdout\.`)

	// The transcoder reports failures as
	//   error executing (<bin>) with args (<args>) | error: <exit> | message: <stdout> <stderr>
	// where stdout carries ffprobe's -show_error JSON.
	reMessageJSON = regexp.MustCompile(`(?s)message: (\{.*)`)
)

// Sanitize turns a raw probe failure into user-facing text. When the error
// embeds ffprobe's -show_error JSON, only its error string is kept.
func Sanitize(err error) string {
	if err == nil {
		return ""
	}
	detail := err.Error()
	if msg, ok := showErrorString(detail); ok {
		detail = msg
	}
	return strings.TrimSpace(reCheckStdout.ReplaceAllString(detail, checkStdoutHint))
}

// showErrorString extracts error.string from the first JSON object following
// "message: ". Trailing stderr text after the object is ignored.
func showErrorString(s string) (string, bool) {
	groups := reMessageJSON.FindStringSubmatch(s)
	if len(groups) < 2 {
		return "", false
	}
	var out struct {
		Error *struct {
			Code   int    `json:"code"`
			String string `json:"string"`
		} `json:"error"`
	}
	if err := json.NewDecoder(strings.NewReader(groups[1])).Decode(&out); err != nil {
		return "", false
	}
	if out.Error == nil || out.Error.String == "" {
		return "", false
	}
	return out.Error.String, true
}

// IsProbeError reports whether err is or wraps a *ProbeError.
func IsProbeError(err error) bool {
	var pe *ProbeError
	return errors.As(err, &pe)
}
