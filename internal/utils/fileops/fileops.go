package fileops

import (
	"os"
	"path/filepath"
)

// FileOps provides a unified interface for common file operations
// combining path validation and error handling
type FileOps struct {
	pathValidator *PathValidator
	errorWrapper  *ErrorWrapper
}

// NewFileOps creates a new FileOps instance with all components
func NewFileOps() *FileOps {
	return &FileOps{
		pathValidator: NewPathValidator(),
		errorWrapper:  NewErrorWrapper(),
	}
}

// ReadFile reads a file and returns its contents as a string
func (fo *FileOps) ReadFile(filePath string) (string, error) {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return "", err
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", fo.errorWrapper.WrapFileReadError(cleanPath, err)
	}
	return string(content), nil
}

// WriteFile writes content to a file, creating parent directories as needed
func (fo *FileOps) WriteFile(filePath string, content []byte, perm os.FileMode) error {
	cleanPath, err := fo.pathValidator.ValidateAndCleanOptional(filePath)
	if err != nil {
		return err
	}

	dir := filepath.Dir(cleanPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fo.errorWrapper.WrapDirectoryCreateError(dir, err)
	}

	if err := os.WriteFile(cleanPath, content, perm); err != nil {
		return fo.errorWrapper.WrapFileWriteError(cleanPath, err)
	}
	return nil
}

// RemoveFile removes a file with path validation and error handling
func (fo *FileOps) RemoveFile(filePath string) error {
	cleanPath, err := fo.pathValidator.ValidateAndClean(filePath)
	if err != nil {
		return err
	}

	if err := os.Remove(cleanPath); err != nil {
		return fo.errorWrapper.WrapFileRemovalError(cleanPath, err)
	}
	return nil
}

// IsDir checks if a path is a directory using the path validator
func (fo *FileOps) IsDir(path string) bool {
	return fo.pathValidator.IsDir(path)
}
