package utils

import (
	"os"
	"path/filepath"

	"github.com/toyz/stratum/internal/models"
	"github.com/toyz/stratum/internal/utils/fileops"
)

// Writer materializes logical files below an output root
type Writer struct {
	root       string
	sourceRoot string
	fileOps    *fileops.FileOps
}

// NewWriter creates a writer for the output root and source root of opts
func NewWriter(opts models.Options) *Writer {
	return &Writer{
		root:       opts.OutputRoot,
		sourceRoot: opts.SourceRoot,
		fileOps:    fileops.NewFileOps(),
	}
}

// SourcePath returns where a generated source file is written
func (w *Writer) SourcePath(file models.LogicalFile) string {
	return filepath.Join(w.root, w.sourceRoot, filepath.FromSlash(file.RelativePath))
}

// ProjectPath returns where a project level file is written
func (w *Writer) ProjectPath(file models.LogicalFile) string {
	return filepath.Join(w.root, filepath.FromSlash(file.RelativePath))
}

// WriteSources writes generated sources below the source root and returns the written paths
func (w *Writer) WriteSources(files []models.LogicalFile) ([]string, error) {
	return w.write(files, w.SourcePath)
}

// WriteProject writes project level files directly below the output root
func (w *Writer) WriteProject(files []models.LogicalFile) ([]string, error) {
	return w.write(files, w.ProjectPath)
}

func (w *Writer) write(files []models.LogicalFile, target func(models.LogicalFile) string) ([]string, error) {
	written := make([]string, 0, len(files))
	for _, file := range files {
		path := target(file)
		if err := w.fileOps.WriteFile(path, []byte(file.Content), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Exists reports whether the output root exists
func (w *Writer) Exists() bool {
	_, err := os.Stat(w.root)
	return err == nil
}
