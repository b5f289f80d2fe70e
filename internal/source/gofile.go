package source

import (
	"context"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/bookstrack/contracts/internal/schema"
)

// GoFile loads schema modules written as Go source. Every exported
// package-level variable holding a map is an export; its value uses the
// same layout as a YAML module export. The file is evaluated with the
// yaegi interpreter, so it may only import the standard library.
type GoFile struct{}

// Load evaluates the Go file at location
func (GoFile) Load(ctx context.Context, location string) (*schema.Module, error) {
	src, err := os.ReadFile(location)
	if err != nil {
		return nil, loadErr(location, err)
	}
	mod, err := evalGoSource(ctx, location, src)
	if err != nil {
		return nil, loadErr(location, err)
	}
	return mod, nil
}

func evalGoSource(ctx context.Context, location string, src []byte) (*schema.Module, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, location, src, parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	i := interp.New(interp.Options{})
	if err := i.Use(stdlib.Symbols); err != nil {
		return nil, fmt.Errorf("failed to load stdlib: %w", err)
	}
	if _, err := i.EvalWithContext(ctx, string(src)); err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	pkg := file.Name.Name
	exports := make(map[string]any)
	for _, name := range exportedVars(file) {
		v, err := i.EvalWithContext(ctx, pkg+"."+name)
		if err != nil {
			return nil, fmt.Errorf("read %s.%s: %w", pkg, name, err)
		}
		if !v.IsValid() || !v.CanInterface() {
			continue
		}
		if m, ok := v.Interface().(map[string]any); ok {
			exports[name] = m
		}
	}
	return schema.DecodeValue(location, exports)
}

func exportedVars(file *ast.File) []string {
	var names []string
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			for _, id := range spec.(*ast.ValueSpec).Names {
				if id.IsExported() {
					names = append(names, id.Name)
				}
			}
		}
	}
	return names
}
