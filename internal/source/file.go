package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/bookstrack/contracts/internal/schema"
)

// File loads YAML and JSON schema modules from disk
type File struct{}

// Load reads and decodes the module at location
func (File) Load(ctx context.Context, location string) (*schema.Module, error) {
	if err := ctx.Err(); err != nil {
		return nil, loadErr(location, err)
	}

	data, err := os.ReadFile(location)
	if err != nil {
		return nil, loadErr(location, err)
	}

	mod, err := schema.DecodeModule(location, data)
	if err != nil {
		return nil, loadErr(location, err)
	}
	return mod, nil
}

// ErrRemoteGo is returned for Go module URLs. Go modules are interpreted
// with stdlib access, so they are only evaluated from local files.
var ErrRemoteGo = errors.New("go schema modules are only loaded from local files")

// decodeByExtension decodes module bytes fetched from somewhere other than
// the local filesystem.
func decodeByExtension(location string, data []byte) (*schema.Module, error) {
	switch ext := strings.ToLower(path.Ext(stripQuery(location))); ext {
	case ".yaml", ".yml", ".json":
		return schema.DecodeModule(location, data)
	default:
		return nil, fmt.Errorf("%w: extension %q", ErrUnsupported, ext)
	}
}

func stripQuery(location string) string {
	if i := strings.IndexAny(location, "?#"); i >= 0 {
		return location[:i]
	}
	return location
}
