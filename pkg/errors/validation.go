package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// MaxIDLength is the longest accepted element id.
const MaxIDLength = 64

// ValidateID validates an element id from a layout document.
//
// Ids end up in SVG attributes, DOT node names and JSON keys, so the rules are
// conservative:
//   - Empty ids are allowed (the element is anonymous)
//   - Maximum length of MaxIDLength characters
//   - Letters, digits, '-', '_' and '.' only
func ValidateID(id string) error {
	if id == "" {
		return nil
	}

	if len(id) > MaxIDLength {
		return New(ErrCodeInvalidID, "id %.16q... too long (max %d characters)", id, MaxIDLength)
	}

	for _, r := range id {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '.' {
			continue
		}
		return New(ErrCodeInvalidID, "id %q contains invalid character %q", id, r)
	}

	return nil
}

// ValidateDocumentPath validates the path of a layout document.
// It only accepts files with a known document extension.
func ValidateDocumentPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidInput, "document path cannot be empty")
	}

	if strings.ContainsRune(path, '\x00') {
		return New(ErrCodeInvalidInput, "document path contains null byte")
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".json":
		return nil
	default:
		return New(ErrCodeInvalidFormat, "unsupported document extension %q (want .toml or .json)", filepath.Ext(path))
	}
}
