package errors

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// ValidateUUID validates a caller-supplied bookmark identifier.
// Safari identifiers are canonically uppercase UUIDs; any RFC 4122 form is
// accepted here and canonicalized by the caller.
func ValidateUUID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidInput, "uuid cannot be empty")
	}
	if _, err := uuid.Parse(id); err != nil {
		return Wrap(ErrCodeInvalidInput, err, "invalid uuid %q", id)
	}
	return nil
}

// ValidateTitle validates a bookmark or folder title.
// Titles are single-line display strings; control characters would corrupt
// the text renderer's column layout.
func ValidateTitle(title string) error {
	if title == "" {
		return New(ErrCodeMissingField, "title cannot be empty")
	}
	for _, r := range title {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "title contains control characters")
		}
	}
	return nil
}

// ValidatePath validates a target path supplied on the command line.
// Each segment must be non-empty; empty segments would silently match
// nothing during a title walk.
func ValidatePath(segments []string) error {
	for _, s := range segments {
		if strings.TrimSpace(s) == "" {
			return New(ErrCodeInvalidInput, "path contains an empty segment")
		}
	}
	return nil
}
