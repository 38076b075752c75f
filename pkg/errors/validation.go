package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// LayoutExtensions lists the file extensions accepted for layout documents.
var LayoutExtensions = []string{".json", ".toml"}

// ValidateLayoutPath validates a layout document path before it is opened.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - Extension must be one of LayoutExtensions (case-insensitive)
func ValidateLayoutPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	for _, allowed := range LayoutExtensions {
		if ext == allowed {
			return nil
		}
	}
	return New(ErrCodeInvalidFormat, "unsupported layout extension %q (must be .json or .toml)", ext)
}
