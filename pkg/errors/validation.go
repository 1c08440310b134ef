package errors

import (
	"strings"
	"unicode"
)

// ValidateDestinationPath validates a tangle destination path for safety and
// correctness. It rejects paths that could escape the output directory or
// that smuggle in absolute or UNC-like locations.
//
// The validation rules are intentionally conservative:
//   - No empty paths
//   - No absolute paths (leading /)
//   - No parent-directory traversal (..)
//   - No double slashes or backslashes
//   - No control characters or null bytes
//   - Maximum length of 256 characters
func ValidateDestinationPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "destination path cannot be empty")
	}

	if len(path) > 256 {
		return New(ErrCodeInvalidPath, "destination path too long (max 256 characters)")
	}

	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "destination path must be relative: %q", path)
	}

	// Check for control characters and null bytes
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "destination path contains invalid control characters")
		}
	}

	// Check for traversal and path-smuggling patterns
	dangerousPatterns := []string{
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(path, pattern) {
			return New(ErrCodeInvalidPath, "destination path contains invalid sequence %q: %q", pattern, path)
		}
	}

	for _, segment := range strings.Split(path, "/") {
		if segment == ".." {
			return New(ErrCodeInvalidPath, "destination path escapes the output directory: %q", path)
		}
	}

	return nil
}
