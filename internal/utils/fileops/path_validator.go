package fileops

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/toyz/stratum/internal/errors"
)

// PathValidator provides centralized path validation and cleaning functionality
type PathValidator struct{}

// NewPathValidator creates a new PathValidator instance
func NewPathValidator() *PathValidator {
	return &PathValidator{}
}

// ValidateAndClean validates and cleans a file path, ensuring it's safe and exists
func (pv *PathValidator) ValidateAndClean(filePath string) (string, error) {
	if filePath == "" {
		return "", errors.FileSystemError("validate", filePath, "path cannot be empty")
	}

	cleanPath := filepath.Clean(filePath)

	// Ensure the clean path doesn't contain path traversal attempts
	if strings.Contains(cleanPath, "..") {
		// Allow .. only if it's at the beginning (relative path)
		if !strings.HasPrefix(cleanPath, "..") {
			return "", errors.FileSystemError("validate", filePath, "path traversal not allowed")
		}
	}

	// Check if file exists
	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return "", errors.FileSystemError("stat", cleanPath, "file does not exist")
	}

	return cleanPath, nil
}

// ValidateAndCleanOptional validates and cleans a path but doesn't require it to exist
func (pv *PathValidator) ValidateAndCleanOptional(filePath string) (string, error) {
	if filePath == "" {
		return "", errors.FileSystemError("validate", filePath, "path cannot be empty")
	}

	// Clean the path to prevent path traversal
	cleanPath := filepath.Clean(filePath)

	// Ensure the clean path doesn't contain path traversal attempts
	if strings.Contains(cleanPath, "..") {
		// Allow .. only if it's at the beginning (relative path)
		if !strings.HasPrefix(cleanPath, "..") {
			return "", errors.FileSystemError("validate", filePath, "path traversal not allowed")
		}
	}

	return cleanPath, nil
}

// IsDir checks if a path exists and is a directory
func (pv *PathValidator) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
