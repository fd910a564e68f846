package cli

import (
	"bytes"
	goio "io"
	"os"
	"path/filepath"
	"strings"

	"github.com/genetracks/genetracks/pkg/errors"
	"github.com/genetracks/genetracks/pkg/figure"
	"github.com/genetracks/genetracks/pkg/io"
)

// stdio is the path argument that selects stdin or stdout.
const stdio = "-"

// readDocument loads a figure from path, or JSON from stdin for "-".
func readDocument(path string) (*figure.Figure, error) {
	if path == stdio {
		return io.ReadJSON(os.Stdin)
	}
	return io.Import(path)
}

// readRaw returns the bytes of path, or of stdin for "-".
func readRaw(path string) ([]byte, error) {
	if path == stdio {
		return goio.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read %s", path)
	}
	return data, err
}

// encodeDocument serialises fig in the codec selected by name's extension.
func encodeDocument(fig *figure.Figure, name string) ([]byte, error) {
	var buf bytes.Buffer
	if err := io.Write(fig, &buf, name); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// writeOutput writes data to path, or to stdout for "-".
func writeOutput(path string, data []byte) error {
	if path == stdio {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input.
// If output has a known format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		if input == stdio {
			return "figure"
		}
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if errors.ValidateFormat(strings.TrimPrefix(ext, ".")) == nil {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath picks the file for one artifact. A single artifact goes to
// output verbatim when given. A derived path that would overwrite the
// input gets a ".rendered" infix.
func outputPath(output, input, format string, single bool) string {
	if single && output != "" {
		return output
	}
	path := basePath(output, input) + "." + format
	if path == input {
		path = basePath(output, input) + ".rendered." + format
	}
	return path
}
