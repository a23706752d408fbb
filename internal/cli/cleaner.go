package cli

import (
	"bufio"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/stratum/internal/errors"
	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/templates"
	"github.com/toyz/stratum/internal/utils/fileops"
)

// Cleaner handles cleaning up generated files
type Cleaner struct {
	fileOps *fileops.FileOps
}

// NewCleaner creates a new cleaner
func NewCleaner() *Cleaner {
	return &Cleaner{
		fileOps: fileops.NewFileOps(),
	}
}

// CleanGeneratedFiles removes every generated Java file below the given directories
// and returns the removed paths. Hand written files are left alone.
func (c *Cleaner) CleanGeneratedFiles(directories []string) ([]string, error) {
	var removedFiles []string

	for _, dir := range directories {
		dir = strings.TrimSuffix(dir, "/...")
		if dir == "" {
			dir = "."
		}
		if !c.fileOps.IsDir(dir) {
			continue
		}

		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != models.JavaExtension {
				return nil
			}

			generated, err := IsGeneratedFile(path)
			if err != nil || !generated {
				return err
			}
			if err := c.fileOps.RemoveFile(path); err != nil {
				return err
			}
			removedFiles = append(removedFiles, path)
			return nil
		})
		if err != nil {
			return removedFiles, errors.WrapFileSystemError("clean", dir, err)
		}
	}

	return removedFiles, nil
}

// IsGeneratedFile reports whether the first line of path is the generated header
func IsGeneratedFile(path string) (bool, error) {
	file, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return false, scanner.Err()
	}
	return strings.TrimSpace(scanner.Text()) == templates.GeneratedHeader, nil
}
