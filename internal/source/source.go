// Package source loads upstream schema modules. A Source turns a location
// (file path or URL) into a schema.Module, or fails with a typed error.
package source

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/bookstrack/contracts/internal/schema"
)

// Source loads the schema module at location
type Source interface {
	Load(ctx context.Context, location string) (*schema.Module, error)
}

// ErrUnsupported is returned for locations no loader understands
var ErrUnsupported = errors.New("unsupported schema module")

// SchemaLoadError reports a module that could not be loaded at all
type SchemaLoadError struct {
	Path string
	Err  error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema module from %s: %v", e.Path, e.Err)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Err
}

// SchemaNotFoundError reports a module that loaded but lacks the export
type SchemaNotFoundError struct {
	Path   string
	Export string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("%s not found in module exports of %s", e.Export, e.Path)
}

// Lookup returns the named export of mod or a SchemaNotFoundError
func Lookup(mod *schema.Module, export string) (*schema.Node, error) {
	n, ok := mod.Lookup(export)
	if !ok || n == nil {
		return nil, &SchemaNotFoundError{Path: mod.Path, Export: export}
	}
	return n, nil
}

// Resolve joins a source root and the module subpath. Roots with an http or
// https scheme are joined as URLs; anything else is an absolute file path.
func Resolve(root, subpath string) (string, error) {
	if isRemote(root) {
		u, err := url.Parse(root)
		if err != nil {
			return "", fmt.Errorf("invalid source root %q: %w", root, err)
		}
		return u.JoinPath(subpath).String(), nil
	}
	return filepath.Abs(filepath.Join(root, filepath.FromSlash(subpath)))
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func loadErr(path string, err error) error {
	var le *SchemaLoadError
	if errors.As(err, &le) {
		return err
	}
	return &SchemaLoadError{Path: path, Err: err}
}
