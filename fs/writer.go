// Package fs provides file-based storage for extraction results.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/enrzones"
)

// ResultPath converts a document name to a relative file path.
// Example: EG-ENR-5.1 → EG-ENR-5.1.json
func ResultPath(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", enrzones.Errorf(enrzones.EINVALID, "document name required")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", enrzones.Errorf(enrzones.EINVALID, "path traversal in document name %q", name)
	}
	return name + ".json", nil
}

// FormatResult encodes a result as indented JSON.
func FormatResult(result *enrzones.Result) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(result); err != nil {
		return nil, fmt.Errorf("encode %s: %w", result.Document, err)
	}
	return buf.Bytes(), nil
}

// Ensure Writer implements enrzones.ResultWriter at compile time.
var _ enrzones.ResultWriter = (*Writer)(nil)

// Writer writes results as JSON files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WriteResult writes a result to <baseDir>/<document>.json.
func (w *Writer) WriteResult(ctx context.Context, result *enrzones.Result) error {
	return writeResult(w.baseDir, result)
}

func writeResult(dir string, result *enrzones.Result) error {
	relPath, err := ResultPath(result.Document)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	content, err := FormatResult(result)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, relPath), content, 0644)
}
