package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/invopop/jsonschema"
)

const (
	SchemaDraft = "http://json-schema.org/draft-07/schema#"
	Title       = "BendV3 API Schemas"
	Description = "Generated from BendV3 schemas - DO NOT EDIT MANUALLY"
	Note        = "Regenerate with `go generate -tags generate ./...`; set BENDV3_PATH to the bendv3 checkout"
)

// Document is the fixture envelope written to disk
type Document struct {
	Schema      string                        `json:"$schema"`
	Title       string                        `json:"title"`
	Description string                        `json:"description"`
	Note        string                        `json:"note"`
	GeneratedAt string                        `json:"generatedAt"`
	Bendv3Path  string                        `json:"bendv3Path"`
	Schemas     map[string]*jsonschema.Schema `json:"schemas"`
}

func newDocument(path string, at time.Time) *Document {
	return &Document{
		Schema:      SchemaDraft,
		Title:       Title,
		Description: Description,
		Note:        Note,
		GeneratedAt: at.UTC().Format("2006-01-02T15:04:05.000Z"),
		Bendv3Path:  path,
		Schemas:     make(map[string]*jsonschema.Schema),
	}
}

// Encode renders the document as 2-space indented JSON with a trailing
// newline
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, fmt.Errorf("failed to encode schema document: %w", err)
	}
	return buf.Bytes(), nil
}

// RawSchemas returns each schema as its JSON encoding
func (d *Document) RawSchemas() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage, len(d.Schemas))
	for name, s := range d.Schemas {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

// writeFile replaces path with data through a temp file in the same
// directory, so readers never observe a partial document.
func writeFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename output file: %w", err)
	}
	return nil
}
