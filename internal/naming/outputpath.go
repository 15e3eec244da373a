package naming

import "path/filepath"

// OutputName returns the file name an input table is written under.
func OutputName(inputPath string) string {
	return filepath.Base(inputPath)
}

// OutputPath joins outputDir and name.
func OutputPath(outputDir, name string) string {
	return filepath.Join(outputDir, name)
}
