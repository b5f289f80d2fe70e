package source

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/bookstrack/contracts/internal/schema"
)

// Auto picks a loader by location: http(s) URLs are fetched, .go files are
// interpreted and everything else is decoded as YAML or JSON. A nil HTTP
// fetches with http.DefaultClient and no retries.
type Auto struct {
	File File
	Go   GoFile
	HTTP *HTTP
}

// NewAuto creates an Auto source using client for remote modules. Remote
// loads are retried twice.
func NewAuto(client *http.Client) *Auto {
	return &Auto{HTTP: &HTTP{Client: client, Retries: 2}}
}

// Load dispatches to the loader matching location
func (a *Auto) Load(ctx context.Context, location string) (*schema.Module, error) {
	if isRemote(location) {
		h := a.HTTP
		if h == nil {
			h = &HTTP{}
		}
		return h.Load(ctx, location)
	}

	switch ext := strings.ToLower(filepath.Ext(location)); ext {
	case ".go":
		return a.Go.Load(ctx, location)
	case ".yaml", ".yml", ".json":
		return a.File.Load(ctx, location)
	default:
		return nil, loadErr(location, fmt.Errorf("%w: extension %q", ErrUnsupported, ext))
	}
}
