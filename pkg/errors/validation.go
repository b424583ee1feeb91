package errors

import (
	"strings"
	"unicode"
)

// ValidateExportPath validates a user-supplied export file path.
// It rejects paths that cannot name a real file on any supported platform.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No control characters or null bytes
//   - Maximum length of 500 characters
//
// Existence and readability are checked later by the loader; this only
// rejects paths that are malformed on their face.
func ValidateExportPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "export path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "export path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "export path contains invalid characters")
		}
	}

	return nil
}

// ValidateOutputDir validates the directory that will receive the result
// artifacts. An empty string is valid and means the working directory.
func ValidateOutputDir(dir string) error {
	if dir == "" {
		return nil
	}

	for _, r := range dir {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output directory contains invalid characters")
		}
	}

	if strings.TrimSpace(dir) == "" {
		return New(ErrCodeInvalidPath, "output directory cannot be blank")
	}

	return nil
}
