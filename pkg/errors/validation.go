package errors

import (
	"path/filepath"
	"strings"
	"unicode"
)

// Output formats understood by the render pipeline.
var validFormats = map[string]bool{"svg": true, "png": true, "pdf": true, "json": true}

// ValidateFormat checks that f names a supported output format.
func ValidateFormat(f string) error {
	if f == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !validFormats[f] {
		return New(ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', 'pdf', or 'json')", f)
	}
	return nil
}

// ValidateFormats checks every entry of formats with [ValidateFormat].
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return New(ErrCodeInvalidFormat, "at least one format is required")
	}
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateScale checks a raster scale factor.
// Scales above 16 would allocate images far beyond any sensible figure.
func ValidateScale(s float64) error {
	if s <= 0 || s > 16 {
		return New(ErrCodeInvalidInput, "scale must be in (0, 16], got %g", s)
	}
	return nil
}

// ValidatePath validates an input or output file path supplied by a user.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
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
	return nil
}

// ValidateDocumentPath validates a figure document path and its extension.
func ValidateDocumentPath(path string) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return nil
	}
	return New(ErrCodeInvalidPath, "unsupported document extension: %q (want .json, .yaml or .yml)", filepath.Ext(path))
}
