package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
)

// Read decodes a document from r in the format implied by the file name
// (".yaml" or ".yml" for YAML, JSON otherwise).
func Read(r io.Reader, name string) (*figure.Figure, error) {
	if isYAML(name) {
		return ReadYAML(r)
	}
	return ReadJSON(r)
}

// Write encodes f to w in the format implied by the file name.
func Write(f *figure.Figure, w io.Writer, name string) error {
	if isYAML(name) {
		return WriteYAML(f, w)
	}
	return WriteJSON(f, w)
}

// Import reads a figure document from path.
// The extension selects the codec; see [Read].
func Import(path string) (*figure.Figure, error) {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	fig, err := Read(f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return fig, nil
}

// Export writes fig to path, creating or truncating the file.
func Export(fig *figure.Figure, path string) error {
	if err := errors.ValidateDocumentPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := Write(fig, f, path); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func isYAML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
