package pipeline

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discover walks inputDir, collects regular files whose extension matches
// ext (case-insensitive), prunes the directories listed in skip, and returns
// the paths sorted lexicographically for deterministic processing order.
// skip entries are compared against absolute paths.
func Discover(inputDir, ext string, skip ...string) ([]string, error) {
	pruned := make(map[string]bool, len(skip))
	for _, s := range skip {
		pruned[filepath.Clean(s)] = true
	}

	var files []string
	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if abs, aerr := filepath.Abs(path); aerr == nil && pruned[abs] && path != inputDir {
				return filepath.SkipDir
			}
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), ext) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// Inputs returns the tables to process for inputPath: the path itself when
// it is a file, otherwise every matching file beneath it. outputDir is
// pruned from the walk when it lies inside inputPath, so earlier outputs
// are never read back as inputs.
func Inputs(inputPath, ext, outputDir string) ([]string, error) {
	fi, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return []string{inputPath}, nil
	}

	root, err := absPath(inputPath)
	if err != nil {
		return nil, err
	}
	out, err := absPath(outputDir)
	if err != nil {
		return nil, err
	}
	if insideOrEqual(root, out) {
		return Discover(root, ext, out)
	}
	return Discover(root, ext)
}

// absPath returns the absolute path with symlinks resolved. A path that does
// not exist yet is returned absolute but unresolved.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}
	return abs, nil
}

func insideOrEqual(parent, child string) bool {
	sep := string(filepath.Separator)
	return child == parent || strings.HasPrefix(child+sep, parent+sep)
}
