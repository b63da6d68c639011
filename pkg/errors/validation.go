package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// ValidateNoteID validates a note identifier for safety and correctness.
// It rejects IDs that could be used for path traversal or injection attacks
// when an ID ends up in a filename or an export label.
//
// The validation rules are intentionally conservative:
//   - No empty IDs
//   - No control characters
//   - No path traversal sequences (.., //, backslash)
//   - No null bytes
//   - Maximum length of 128 characters
func ValidateNoteID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidNote, "note id cannot be empty")
	}

	if len(id) > 128 {
		return New(ErrCodeInvalidNote, "note id too long (max 128 characters)")
	}

	// Check for control characters and null bytes
	for _, r := range id {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidNote, "note id contains invalid control characters")
		}
	}

	// Check for path traversal patterns
	dangerousPatterns := []string{
		"..",   // Parent directory
		"//",   // Double slash
		"\x00", // Null byte
		"\\",   // Backslash (Windows path)
	}

	for _, pattern := range dangerousPatterns {
		if strings.Contains(id, pattern) {
			return New(ErrCodeInvalidNote, "note id contains invalid characters: %q", pattern)
		}
	}

	return nil
}

// ValidateDimensions validates note dimensions read from a board file.
// The node layer itself accepts any numeric size; board files are the
// boundary where malformed input is rejected.
func ValidateDimensions(width, height float64) error {
	if width <= 0 {
		return New(ErrCodeInvalidNote, "note width must be positive, got %v", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidNote, "note height must be positive, got %v", height)
	}
	return nil
}

// ValidateScale validates a workspace zoom factor.
func ValidateScale(scale float64) error {
	if scale <= 0 {
		return New(ErrCodeInvalidBoard, "workspace scale must be positive, got %v", scale)
	}
	return nil
}

// ValidatePath validates a board file path for safety.
// It prevents path traversal attacks and ensures reasonable path length.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
//   - No absolute paths (must be relative)
//   - No path traversal sequences (..)
//   - No backslashes (Windows-style paths)
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	// Check for null bytes and control characters
	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	// Must not be absolute path
	if strings.HasPrefix(path, "/") {
		return New(ErrCodeInvalidPath, "path must be relative (cannot start with /)")
	}

	// Check for path traversal
	if strings.Contains(path, "..") {
		return New(ErrCodeInvalidPath, "path cannot contain path traversal sequences (..)")
	}

	// No backslashes (potential Windows path injection)
	if strings.Contains(path, "\\") {
		return New(ErrCodeInvalidPath, "path cannot contain backslashes")
	}

	return nil
}

// uuidRegex matches canonical RFC 4122 UUID strings.
var uuidRegex = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidateUUID validates that id is a canonical UUID string.
// Board files may use free-form IDs; generated IDs are always UUIDs.
func ValidateUUID(id string) error {
	if err := ValidateNoteID(id); err != nil {
		return err
	}

	if !uuidRegex.MatchString(id) {
		return New(ErrCodeInvalidNote, "invalid UUID: %q", id)
	}

	return nil
}
