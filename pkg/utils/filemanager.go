// =============================================================================
// Stake Converter - File Manager Utility
// =============================================================================
//
// This module provides the file handling around a conversion run:
//   - Discovery of the thread CSV to process
//   - Output file naming
//
// DISCOVERY ORDER:
//   1. thread_2.csv
//   2. thread_1.csv
//   3. the first file matching thread_*.csv
//
// =============================================================================

package utils

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// =============================================================================
// NAMING CONSTANTS
// =============================================================================

const (
	// InputPrefix starts every thread CSV file name.
	InputPrefix = "thread_"

	// OutputPrefix replaces InputPrefix in the output file name.
	OutputPrefix = "output_"

	// ThreadPattern matches any thread CSV file.
	ThreadPattern = InputPrefix + "*.csv"
)

// PreferredInputs lists the file names checked before falling back to
// ThreadPattern, highest priority first.
var PreferredInputs = []string{
	"thread_2.csv",
	"thread_1.csv",
}

// =============================================================================
// FILE MANAGER
// =============================================================================

// FileManager handles file operations for a conversion run. All paths are
// resolved against Dir.
type FileManager struct {
	// Dir is the working directory holding the input, config and output files.
	Dir string
}

// NewFileManager creates a new FileManager rooted at dir.
func NewFileManager(dir string) *FileManager {
	return &FileManager{Dir: dir}
}

// =============================================================================
// FILE DISCOVERY
// =============================================================================

// DiscoverThreadFile returns the path of the thread CSV to process.
//
// RETURNS:
//   - The path of the selected file, or "" when no candidate exists.
//   - An error if the directory cannot be inspected.
//
// When neither preferred file exists the first ThreadPattern match is used.
// Only entry names are matched against the pattern, so glob characters in
// Dir itself have no effect. "First" means first in os.ReadDir order, which
// is sorted by file name: thread_10.csv therefore wins over thread_3.csv.
func (fm *FileManager) DiscoverThreadFile() (string, error) {
	for _, name := range PreferredInputs {
		path := filepath.Join(fm.Dir, name)
		ok, err := isRegularFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to check %s", name)
		}
		if ok {
			return path, nil
		}
	}

	entries, err := os.ReadDir(fm.Dir)
	if err != nil {
		return "", errors.Wrap(err, "failed to scan working directory")
	}

	for _, entry := range entries {
		if !IsThreadFileName(entry.Name()) {
			continue
		}
		path := filepath.Join(fm.Dir, entry.Name())
		ok, err := isRegularFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to check %s", entry.Name())
		}
		if ok {
			return path, nil
		}
	}

	return "", nil
}

// IsThreadFileName reports whether name, a base file name, matches
// ThreadPattern.
func IsThreadFileName(name string) bool {
	matched, err := filepath.Match(ThreadPattern, name)
	return err == nil && matched
}

// OutputPath returns the output file path for inputPath inside Dir.
func (fm *FileManager) OutputPath(inputPath string) string {
	return filepath.Join(fm.Dir, OutputFileName(filepath.Base(inputPath)))
}

// =============================================================================
// FILE NAMING
// =============================================================================

// OutputFileName derives the output file name from a thread file name by
// replacing InputPrefix with OutputPrefix.
//
// Example: "thread_3.csv" -> "output_3.csv"
func OutputFileName(inputName string) string {
	return strings.ReplaceAll(inputName, InputPrefix, OutputPrefix)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// isRegularFile reports whether path names something other than a directory.
// A missing path is not an error.
func isRegularFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}
