package cli

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/utils"
)

// DescriptorExtensions are the file extensions recognised as descriptor files
var DescriptorExtensions = []string{".json", ".yaml", ".yml"}

// DirectoryScanner discovers descriptor files below the given inputs.
// Config files found while expanding a directory are never treated as descriptors.
type DirectoryScanner struct {
	excluded map[string]bool
}

// NewDirectoryScanner creates a new directory scanner that skips utils.DefaultConfigFile
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{excluded: make(map[string]bool)}
}

// Exclude skips path when it turns up during directory expansion.
// An empty path is ignored.
func (s *DirectoryScanner) Exclude(path string) {
	if path == "" {
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		s.excluded[abs] = true
	}
}

// isExcluded reports whether a file found inside a directory is a config file
func (s *DirectoryScanner) isExcluded(path string) bool {
	if filepath.Base(path) == utils.DefaultConfigFile {
		return true
	}
	abs, err := filepath.Abs(path)
	return err == nil && s.excluded[abs]
}

// ScanInputs resolves files and directories into an ordered list of descriptor files.
// Inputs keep their order; files found inside one directory are sorted.
// Supports patterns like "./..." for recursive scanning. Files named
// explicitly are kept even when they are excluded.
func (s *DirectoryScanner) ScanInputs(inputs []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(found []string) {
		for _, file := range found {
			if !seen[file] {
				seen[file] = true
				files = append(files, file)
			}
		}
	}

	for _, input := range inputs {
		recursive := false
		if strings.HasSuffix(input, "/...") {
			recursive = true
			input = strings.TrimSuffix(input, "/...")
			if input == "" {
				input = "."
			}
		}

		info, err := os.Stat(input)
		if err != nil {
			return nil, errors.WrapFileSystemError("stat", input, err).
				WithSuggestion("Check that the input path exists")
		}

		if !info.IsDir() {
			add([]string{filepath.Clean(input)})
			continue
		}

		found, err := s.scanDirectory(input, recursive)
		if err != nil {
			return nil, err
		}
		add(found)
	}

	return files, nil
}

func (s *DirectoryScanner) scanDirectory(dir string, recursive bool) ([]string, error) {
	var found []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && (!recursive || strings.HasPrefix(d.Name(), ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if IsDescriptorFile(path) && !s.isExcluded(path) {
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapFileSystemError("scan", dir, err)
	}

	sort.Strings(found)
	return found, nil
}

// IsDescriptorFile reports whether path has a descriptor extension
func IsDescriptorFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, candidate := range DescriptorExtensions {
		if ext == candidate {
			return true
		}
	}
	return false
}
