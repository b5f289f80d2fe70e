// Package generator exports upstream BendV3 schemas as a JSON Schema
// fixture envelope.
package generator

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bookstrack/contracts/internal/source"
	"github.com/bookstrack/contracts/internal/translate"
	"github.com/bookstrack/contracts/internal/validation"
)

// Export maps an upstream export to the entity name used in the envelope
type Export struct {
	Entity string
	Name   string
}

// Options control where schemas are loaded from and written to
type Options struct {
	Root        string
	Subpath     string
	Exports     []Export
	Output      string
	LoadTimeout time.Duration
}

// ExportsFromMap turns an entity → export mapping into a list sorted by
// entity name
func ExportsFromMap(m map[string]string) []Export {
	exports := make([]Export, 0, len(m))
	for _, entity := range slices.Sorted(maps.Keys(m)) {
		exports = append(exports, Export{Entity: entity, Name: m[entity]})
	}
	return exports
}

// Summary describes one generated schema
type Summary struct {
	Name       string
	Properties int
}

// Result is the outcome of a successful Generate
type Result struct {
	Output  string
	Source  string
	Schemas []Summary
}

// Generator loads, translates and writes schemas
type Generator struct {
	src    source.Source
	opts   Options
	logger *zap.Logger
	now    func() time.Time
}

// New creates a generator reading modules through src
func New(src source.Source, opts Options, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		src:    src,
		opts:   opts,
		logger: logger,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for generatedAt
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// Build loads the upstream module and translates every configured export.
// Nothing is written.
func (g *Generator) Build(ctx context.Context) (*Document, error) {
	if len(g.opts.Exports) == 0 {
		return nil, errors.New("no exports configured")
	}

	location, err := source.Resolve(g.opts.Root, g.opts.Subpath)
	if err != nil {
		return nil, err
	}

	loadCtx := ctx
	if g.opts.LoadTimeout > 0 {
		var cancel context.CancelFunc
		loadCtx, cancel = context.WithTimeout(ctx, g.opts.LoadTimeout)
		defer cancel()
	}

	g.logger.Debug("loading schema module", zap.String("location", location))
	mod, err := g.src.Load(loadCtx, location)
	if err != nil {
		return nil, err
	}

	doc := newDocument(location, g.now())
	for _, exp := range g.opts.Exports {
		node, err := source.Lookup(mod, exp.Name)
		if err != nil {
			return nil, err
		}
		doc.Schemas[exp.Entity] = translate.Schema(node)
	}

	raw, err := doc.RawSchemas()
	if err != nil {
		return nil, err
	}
	if _, err := validation.CompileAll(raw); err != nil {
		return nil, fmt.Errorf("generated schemas failed self-check: %w", err)
	}
	return doc, nil
}

// Generate builds the document and atomically replaces the output file
func (g *Generator) Generate(ctx context.Context) (*Result, error) {
	doc, err := g.Build(ctx)
	if err != nil {
		return nil, err
	}

	data, err := doc.Encode()
	if err != nil {
		return nil, err
	}
	if err := writeFile(g.opts.Output, data); err != nil {
		return nil, err
	}

	res := &Result{Output: g.opts.Output, Source: doc.Bendv3Path}
	for _, exp := range g.opts.Exports {
		res.Schemas = append(res.Schemas, Summary{
			Name:       exp.Entity,
			Properties: translate.PropertyCount(doc.Schemas[exp.Entity]),
		})
	}

	g.logger.Info("generated schemas",
		zap.String("path", res.Output),
		zap.String("source", res.Source),
		zap.Strings("schemas", res.Names()),
	)
	for _, s := range res.Schemas {
		g.logger.Info("schema", zap.String("name", s.Name), zap.Int("properties", s.Properties))
	}
	return res, nil
}

// Names lists the generated schema names
func (r *Result) Names() []string {
	names := make([]string, len(r.Schemas))
	for i, s := range r.Schemas {
		names[i] = s.Name
	}
	return names
}

func (r *Result) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generated %s\n", r.Output)
	for _, s := range r.Schemas {
		fmt.Fprintf(&b, "  %s: %d properties\n", s.Name, s.Properties)
	}
	return b.String()
}
