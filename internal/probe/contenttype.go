package probe

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// genericTypes are sniffing results too vague to classify a media file.
var genericTypes = []string{"application/octet-stream", "text/plain"}

// avContainers are audio/video formats whose registered type is not under
// audio/ or video/.
var avContainers = map[string]bool{
	"application/ogg":              true,
	"application/mxf":              true,
	"application/vnd.rn-realmedia": true,
	"application/vnd.ms-asf":       true,
}

// DetectContentType sniffs the file at path and returns its MIME type. When
// sniffing yields only a generic type, the type registered for the file's
// extension is used instead, if there is one.
func DetectContentType(path string) (string, error) {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return "", err
	}
	for _, g := range genericTypes {
		if mt.Is(g) {
			if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
				return byExt, nil
			}
			break
		}
	}
	return mt.String(), nil
}

// IsAudioVideo reports whether contentType names an audio or video format.
func IsAudioVideo(contentType string) bool {
	base, _, _ := strings.Cut(strings.ToLower(contentType), ";")
	base = strings.TrimSpace(base)
	if strings.HasPrefix(base, "audio/") || strings.HasPrefix(base, "video/") {
		return true
	}
	return avContainers[base]
}
