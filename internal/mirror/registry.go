// Package mirror holds Go declarations of the BendV3 API contract: the v3
// book payloads, the canonical DTOs and their enums. Schemas reflected from
// these types are what the drift check compares against upstream.
package mirror

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/invopop/jsonschema"

	"github.com/bookstrack/contracts/internal/validation"
)

// Entities are the mirrored object types keyed by upstream name, in
// declaration order
var Entities = []struct {
	Name string
	Type reflect.Type
}{
	{"Book", reflect.TypeFor[Book]()},
	{"BookResponse", reflect.TypeFor[BookResponse]()},
	{"ErrorResponse", reflect.TypeFor[ErrorResponse]()},
	{"BookSearchResults", reflect.TypeFor[BookSearchResults]()},
	{"WorkDTO", reflect.TypeFor[WorkDTO]()},
	{"EditionDTO", reflect.TypeFor[EditionDTO]()},
	{"AuthorDTO", reflect.TypeFor[AuthorDTO]()},
}

// Enums are the mirrored enum types keyed by upstream name
var Enums = []struct {
	Name   string
	Schema func() *jsonschema.Schema
}{
	{"BookProvider", BookProvider("").JSONSchema},
	{"EditionFormat", EditionFormat("").JSONSchema},
	{"AuthorGender", AuthorGender("").JSONSchema},
	{"CulturalRegion", CulturalRegion("").JSONSchema},
	{"ReviewStatus", ReviewStatus("").JSONSchema},
	{"DataProvider", DataProvider("").JSONSchema},
	{"ApiErrorCode", ApiErrorCode("").JSONSchema},
	{"EnrichmentSource", EnrichmentSource("").JSONSchema},
	{"CoverSource", CoverSource("").JSONSchema},
}

func reflector() *jsonschema.Reflector {
	return &jsonschema.Reflector{
		Anonymous:      true,
		DoNotReference: true,
	}
}

// Schema returns the reflected JSON Schema of one mirrored entity or enum
func Schema(name string) (*jsonschema.Schema, bool) {
	for _, e := range Entities {
		if e.Name == name {
			s := reflector().ReflectFromType(e.Type)
			s.Version = ""
			s.ID = ""
			s.Definitions = nil
			return s, true
		}
	}
	for _, e := range Enums {
		if e.Name == name {
			return e.Schema(), true
		}
	}
	return nil, false
}

// Names lists every entity and enum name
func Names() []string {
	names := make([]string, 0, len(Entities)+len(Enums))
	for _, e := range Entities {
		names = append(names, e.Name)
	}
	for _, e := range Enums {
		names = append(names, e.Name)
	}
	return names
}

// Schemas reflects every mirrored entity and enum
func Schemas() map[string]*jsonschema.Schema {
	out := make(map[string]*jsonschema.Schema, len(Entities)+len(Enums))
	for _, name := range Names() {
		s, _ := Schema(name)
		out[name] = s
	}
	return out
}

// SchemasJSON encodes Schemas as raw JSON documents
func SchemasJSON() (map[string]json.RawMessage, error) {
	out := make(map[string]json.RawMessage)
	for name, s := range Schemas() {
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema %s: %w", name, err)
		}
		out[name] = data
	}
	return out, nil
}

var compiled = sync.OnceValues(func() (*validation.Set, error) {
	docs, err := SchemasJSON()
	if err != nil {
		return nil, err
	}
	return validation.CompileAll(docs)
})

// Validate checks that v, once JSON encoded, satisfies the reflected schema
// of entity: required fields are present and enum-typed fields only hold
// members of their enum.
func Validate(entity string, v any) error {
	set, err := compiled()
	if err != nil {
		return fmt.Errorf("failed to compile mirror schemas: %w", err)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", entity, err)
	}
	return set.ValidateJSON(entity, data)
}
