// Package translate converts upstream schema nodes into JSON Schema.
package translate

import (
	"encoding/json"
	"strconv"

	"github.com/invopop/jsonschema"

	"github.com/bookstrack/contracts/internal/schema"
)

// Schema converts n into a JSON Schema. Objects become
// {type: object, properties, required}; optional fields are left out of
// required; nullable nodes are wrapped in anyOf with a null schema.
func Schema(n *schema.Node) *jsonschema.Schema {
	s := convert(n)
	if n.Default != nil {
		s.Default = n.Default
	}
	if !n.Nullable {
		s.Description = n.Description
		return s
	}
	return &jsonschema.Schema{
		Description: n.Description,
		AnyOf:       []*jsonschema.Schema{s, {Type: "null"}},
	}
}

func convert(n *schema.Node) *jsonschema.Schema {
	switch n.Kind {
	case schema.KindObject:
		return object(n)
	case schema.KindString:
		return &jsonschema.Schema{
			Type:      "string",
			MinLength: length(n.MinLength),
			MaxLength: length(n.MaxLength),
			Pattern:   n.Pattern,
			Format:    n.Format,
		}
	case schema.KindNumber, schema.KindInteger:
		return &jsonschema.Schema{
			Type:             string(n.Kind),
			Minimum:          number(n.Minimum),
			Maximum:          number(n.Maximum),
			ExclusiveMinimum: number(n.ExclusiveMinimum),
			ExclusiveMaximum: number(n.ExclusiveMaximum),
		}
	case schema.KindBoolean:
		return &jsonschema.Schema{Type: "boolean"}
	case schema.KindNull:
		return &jsonschema.Schema{Type: "null"}
	case schema.KindArray:
		s := &jsonschema.Schema{
			Type:     "array",
			MinItems: length(n.MinItems),
			MaxItems: length(n.MaxItems),
		}
		if n.Items != nil {
			s.Items = Schema(n.Items)
		}
		return s
	case schema.KindEnum:
		values := make([]any, len(n.Enum))
		for i, v := range n.Enum {
			values[i] = v
		}
		return &jsonschema.Schema{Type: "string", Enum: values}
	case schema.KindLiteral:
		return &jsonschema.Schema{Type: literalType(n.Literal), Const: n.Literal}
	case schema.KindRecord:
		s := &jsonschema.Schema{Type: "object"}
		if n.Values != nil && n.Values.Kind != schema.KindAny {
			s.AdditionalProperties = Schema(n.Values)
		}
		return s
	default:
		return &jsonschema.Schema{}
	}
}

func object(n *schema.Node) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:                 "object",
		Properties:           jsonschema.NewProperties(),
		AdditionalProperties: jsonschema.FalseSchema,
	}
	for _, f := range n.Fields {
		s.Properties.Set(f.Name, Schema(f.Schema))
		if !f.Schema.Optional {
			s.Required = append(s.Required, f.Name)
		}
	}
	return s
}

// PropertyCount returns the number of top-level properties of s, looking
// through a nullable wrapper.
func PropertyCount(s *jsonschema.Schema) int {
	if s == nil {
		return 0
	}
	if s.Properties == nil && len(s.AnyOf) == 2 {
		return PropertyCount(s.AnyOf[0])
	}
	if s.Properties == nil {
		return 0
	}
	return s.Properties.Len()
}

func literalType(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case string:
		return "string"
	case int, int64, uint64, float64:
		return "number"
	}
	return ""
}

func length(v *int) *uint64 {
	if v == nil || *v < 0 {
		return nil
	}
	u := uint64(*v)
	return &u
}

func number(v *float64) json.Number {
	if v == nil {
		return ""
	}
	return json.Number(strconv.FormatFloat(*v, 'f', -1, 64))
}
