// Package mount resolves partial media references against an ordered list of
// candidate root directories.
package mount

import (
	"fmt"
	"os"
	"path/filepath"
)

// List is an ordered, non-empty sequence of mount roots. Earlier entries win.
type List []string

// NotFoundError reports a reference that exists under none of the mounts.
type NotFoundError struct {
	Ref    string
	Mounts List
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Media file '%s' not found under any mount: %v", e.Ref, []string(e.Mounts))
}

// Join returns the full path of ref under root.
func Join(root, ref string) string {
	return filepath.Join(root, filepath.FromSlash(ref))
}

// Resolve returns the first root/ref that exists, trying mounts in order.
// Every call checks the filesystem again; nothing is cached between rows.
func Resolve(mounts List, ref string) (string, error) {
	for _, root := range mounts {
		p := Join(root, ref)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", &NotFoundError{Ref: ref, Mounts: mounts}
}

// ResolveOrFirst behaves like Resolve but falls back to ref under the first
// mount when no candidate exists, leaving the caller's next I/O step to
// report the failure. It returns "" only when mounts is empty.
func ResolveOrFirst(mounts List, ref string) string {
	if p, err := Resolve(mounts, ref); err == nil {
		return p
	}
	if len(mounts) == 0 {
		return ""
	}
	return Join(mounts[0], ref)
}

// Missing returns the mounts that do not exist as directories.
func Missing(mounts List) []string {
	var missing []string
	for _, root := range mounts {
		fi, err := os.Stat(root)
		if err != nil || !fi.IsDir() {
			missing = append(missing, root)
		}
	}
	return missing
}
