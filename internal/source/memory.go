package source

import (
	"context"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/bookstrack/contracts/internal/schema"
)

// Memory is an in-memory Source for tests. Locations without a registered
// module fail with a SchemaLoadError wrapping os.ErrNotExist.
type Memory struct {
	mu      sync.Mutex
	modules map[string]*schema.Module
	errs    map[string]error
	loads   int
}

// NewMemory creates an empty in-memory source
func NewMemory() *Memory {
	return &Memory{
		modules: make(map[string]*schema.Module),
		errs:    make(map[string]error),
	}
}

// Put registers exports under location
func (m *Memory) Put(location string, exports map[string]*schema.Node) {
	mod := schema.NewModule(location)
	for _, name := range slices.Sorted(maps.Keys(exports)) {
		mod.Add(name, exports[name])
	}
	m.PutModule(mod)
}

// PutModule registers a prepared module under its own path
func (m *Memory) PutModule(mod *schema.Module) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.modules[mod.Path] = mod
	delete(m.errs, mod.Path)
}

// Fail makes every load of location fail with err
func (m *Memory) Fail(location string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[location] = err
}

// Loads returns how many times Load was called
func (m *Memory) Loads() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loads
}

// Load returns the registered module for location
func (m *Memory) Load(ctx context.Context, location string) (*schema.Module, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loads++

	if err := ctx.Err(); err != nil {
		return nil, loadErr(location, err)
	}
	if err, ok := m.errs[location]; ok {
		return nil, loadErr(location, err)
	}
	mod, ok := m.modules[location]
	if !ok {
		return nil, loadErr(location, os.ErrNotExist)
	}
	return mod, nil
}
