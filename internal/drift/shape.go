// Package drift compares the structure of mirrored types against upstream
// schemas.
package drift

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"
)

// Root is the path of an entity's top-level schema
const Root = "$"

// Field is the normalized shape of one schema location
type Field struct {
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Nullable bool     `json:"nullable,omitempty"`
	Enum     []string `json:"enum,omitempty"`
}

// Shape maps dotted paths (authors[], boundingBox.x) to their fields
type Shape map[string]Field

// Paths returns the shape's paths in sorted order
func (s Shape) Paths() []string {
	paths := make([]string, 0, len(s))
	for p := range s {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// ShapeOf flattens a decoded JSON Schema document
func ShapeOf(doc map[string]any) Shape {
	shape := make(Shape)
	flatten(shape, Root, doc, true)
	return shape
}

// ShapesFromJSON flattens every raw schema in docs
func ShapesFromJSON(docs map[string]json.RawMessage) (map[string]Shape, error) {
	shapes := make(map[string]Shape, len(docs))
	for name, raw := range docs {
		var doc map[string]any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode schema %s: %w", name, err)
		}
		shapes[name] = ShapeOf(doc)
	}
	return shapes, nil
}

func flatten(shape Shape, path string, doc map[string]any, required bool) {
	doc, nullable := unwrapNullable(doc)
	typ, typeNullable := normalizeType(doc)

	shape[path] = Field{
		Type:     typ,
		Required: required,
		Nullable: nullable || typeNullable,
		Enum:     enumOf(doc),
	}

	switch typ {
	case "object":
		req := stringsOf(doc["required"])
		if props, ok := doc["properties"].(map[string]any); ok {
			for name, p := range props {
				child, ok := p.(map[string]any)
				if !ok {
					continue
				}
				flatten(shape, join(path, name), child, slices.Contains(req, name))
			}
		}
		if values, ok := doc["additionalProperties"].(map[string]any); ok {
			flatten(shape, join(path, "*"), values, false)
		}
	case "array":
		if items, ok := doc["items"].(map[string]any); ok {
			flatten(shape, path+"[]", items, true)
		}
	}
}

func join(path, name string) string {
	if path == Root {
		return name
	}
	return path + "." + name
}

// unwrapNullable strips an anyOf/oneOf pair where one branch is {type: null}
func unwrapNullable(doc map[string]any) (map[string]any, bool) {
	for _, key := range []string{"anyOf", "oneOf"} {
		branches, ok := doc[key].([]any)
		if !ok || len(branches) != 2 {
			continue
		}
		for i, b := range branches {
			branch, ok := b.(map[string]any)
			if ok && branch["type"] == "null" {
				if other, ok := branches[1-i].(map[string]any); ok {
					return other, true
				}
			}
		}
	}
	return doc, false
}

func normalizeType(doc map[string]any) (string, bool) {
	switch t := doc["type"].(type) {
	case string:
		return normalize(t), false
	case []any:
		var typ string
		nullable := false
		for _, v := range t {
			s, _ := v.(string)
			if s == "null" {
				nullable = true
				continue
			}
			typ = normalize(s)
		}
		return typ, nullable
	}

	switch {
	case doc["enum"] != nil:
		return "string", false
	case doc["const"] != nil:
		return constType(doc["const"]), false
	case doc["properties"] != nil:
		return "object", false
	}
	return "any", false
}

func normalize(t string) string {
	if t == "integer" {
		return "number"
	}
	return t
}

func constType(v any) string {
	switch v.(type) {
	case bool:
		return "boolean"
	case float64:
		return "number"
	case string:
		return "string"
	}
	return "any"
}

func enumOf(doc map[string]any) []string {
	values := stringsOf(doc["enum"])
	if len(values) == 0 {
		return nil
	}
	slices.Sort(values)
	return values
}

func stringsOf(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, item := range list {
		out = append(out, fmt.Sprint(item))
	}
	return out
}
