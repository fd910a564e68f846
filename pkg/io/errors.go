package io

import (
	"fmt"
	"strings"

	"github.com/genetracks/genetracks/pkg/errors"
)

// ParseError describes a document that could not be decoded.
type ParseError struct {
	Format string // "json" or "yaml"
	Offset int64  // byte offset of a syntax error, or -1
	Field  string // schema path of the offending value, e.g. "tracks.0.elems.1.start"

	// Problems lists every schema violation; Err carries the first.
	Problems []string

	Err *errors.Error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parse %s", e.Format)
	switch {
	case e.Field != "":
		fmt.Fprintf(&b, " at %s", e.Field)
	case e.Offset >= 0:
		fmt.Fprintf(&b, " at offset %d", e.Offset)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Message)
	if e.Err.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Err.Cause)
	}
	return b.String()
}

// Unwrap exposes the coded error so errors.Is(err, ErrCodeParse) holds.
func (e *ParseError) Unwrap() error {
	return e.Err
}

func newParseError(format string, offset int64, cause error, msg string, args ...any) *ParseError {
	return &ParseError{
		Format: format,
		Offset: offset,
		Err:    errors.Wrap(errors.ErrCodeParse, cause, msg, args...),
	}
}
