// Package validation compiles JSON Schema documents and validates instances
// against them.
package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// resourceBase is the URL prefix compiled schemas are registered under
const resourceBase = "https://schemas.bendv3.local/"

// ErrUnknownEntity is returned when validating against a schema name that
// is not part of the set
var ErrUnknownEntity = errors.New("unknown entity")

// Set is a group of compiled schemas keyed by entity name
type Set struct {
	schemas map[string]*jsonschema.Schema
}

// Compile compiles one schema document. Documents without $schema are
// treated as Draft-07.
func Compile(name string, data []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7

	url := resourceBase + name + ".json"
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
	}
	s, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("invalid schema %s: %w", name, err)
	}
	return s, nil
}

// CompileAll compiles every raw schema in docs
func CompileAll(docs map[string]json.RawMessage) (*Set, error) {
	set := &Set{schemas: make(map[string]*jsonschema.Schema, len(docs))}
	var errs []error
	for _, name := range sortedKeys(docs) {
		s, err := Compile(name, docs[name])
		if err != nil {
			errs = append(errs, err)
			continue
		}
		set.schemas[name] = s
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return set, nil
}

// CompileEnvelope compiles the schemas of a generated fixture envelope
func CompileEnvelope(data []byte) (*Set, error) {
	var envelope struct {
		Schemas map[string]json.RawMessage `json:"schemas"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if len(envelope.Schemas) == 0 {
		return nil, errors.New("envelope has no schemas")
	}
	return CompileAll(envelope.Schemas)
}

// Names returns the entity names of the set in sorted order
func (s *Set) Names() []string {
	return sortedKeys(s.schemas)
}

// Validate checks a decoded JSON value against the named schema
func (s *Set) Validate(entity string, instance any) error {
	sch, ok := s.schemas[entity]
	if !ok {
		return fmt.Errorf("%w %q (known: %s)", ErrUnknownEntity, entity, strings.Join(s.Names(), ", "))
	}
	return sch.Validate(instance)
}

// ValidateJSON decodes data and validates it against the named schema
func (s *Set) ValidateJSON(entity string, data []byte) error {
	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return s.Validate(entity, instance)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
