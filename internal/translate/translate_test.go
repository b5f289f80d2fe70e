package translate_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstrack/contracts/internal/schema"
	"github.com/bookstrack/contracts/internal/translate"
)

const module = `
exports:
  BookSchema:
    type: object
    properties:
      isbn: {type: string, length: 13, description: 13-digit ISBN}
      isbn10: {type: string, length: 10, optional: true}
      title: {type: string, min: 1}
      authors: {type: array, items: string}
      pageCount: {type: integer, positive: true, optional: true}
      coverUrl: {type: string, format: url, optional: true}
      provider:
        enum: [alexandria, google_books, open_library, isbndb]
      quality: {type: number, min: 0, max: 100}
  SearchSchema:
    type: object
    properties:
      success: {const: true}
      books: {type: array, items: {ref: BookSchema}}
      boundingBox:
        type: object
        optional: true
        nullable: true
        description: Detected region
        properties:
          x: number
          y: number
      details: {type: record, values: string, optional: true}
      extra: {type: record, values: any, optional: true}
`

func load(t *testing.T, name string) map[string]any {
	t.Helper()
	mod, err := schema.DecodeModule("test.yaml", []byte(module))
	require.NoError(t, err)
	n, ok := mod.Lookup(name)
	require.True(t, ok)

	data, err := json.Marshal(translate.Schema(n))
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestSchema_BookScenario(t *testing.T) {
	book := load(t, "BookSchema")

	assert.Equal(t, "object", book["type"])
	assert.Equal(t, false, book["additionalProperties"])

	props := book["properties"].(map[string]any)
	assert.Equal(t, map[string]any{
		"type":        "string",
		"minLength":   float64(13),
		"maxLength":   float64(13),
		"description": "13-digit ISBN",
	}, props["isbn"])
	assert.Equal(t, map[string]any{
		"type":    "number",
		"minimum": float64(0),
		"maximum": float64(100),
	}, props["quality"])

	required := book["required"].([]any)
	assert.Contains(t, required, "isbn")
	assert.Contains(t, required, "quality")
	assert.NotContains(t, required, "isbn10")
	assert.NotContains(t, required, "pageCount")
}

func TestSchema_PropertyCoverageAndRequired(t *testing.T) {
	mod, err := schema.DecodeModule("test.yaml", []byte(module))
	require.NoError(t, err)
	src, _ := mod.Lookup("BookSchema")

	out := load(t, "BookSchema")
	props := out["properties"].(map[string]any)
	required := map[string]bool{}
	for _, r := range out["required"].([]any) {
		required[r.(string)] = true
	}

	require.Len(t, props, len(src.Fields))
	for _, f := range src.Fields {
		assert.Contains(t, props, f.Name)
		assert.Equal(t, !f.Schema.Optional, required[f.Name], "required flag for %s", f.Name)
	}
}

func TestSchema_Constraints(t *testing.T) {
	props := load(t, "BookSchema")["properties"].(map[string]any)

	pages := props["pageCount"].(map[string]any)
	assert.Equal(t, "integer", pages["type"])
	assert.Equal(t, float64(0), pages["exclusiveMinimum"])

	cover := props["coverUrl"].(map[string]any)
	assert.Equal(t, "uri", cover["format"])

	provider := props["provider"].(map[string]any)
	assert.Equal(t, []any{"alexandria", "google_books", "open_library", "isbndb"}, provider["enum"])

	title := props["title"].(map[string]any)
	assert.Equal(t, float64(1), title["minLength"])
	assert.NotContains(t, title, "maxLength")

	authors := props["authors"].(map[string]any)
	assert.Equal(t, "array", authors["type"])
	assert.Equal(t, map[string]any{"type": "string"}, authors["items"])
}

func TestSchema_NestedAndNullable(t *testing.T) {
	out := load(t, "SearchSchema")
	props := out["properties"].(map[string]any)

	success := props["success"].(map[string]any)
	assert.Equal(t, "boolean", success["type"])
	assert.Equal(t, true, success["const"])

	books := props["books"].(map[string]any)
	items := books["items"].(map[string]any)
	assert.Equal(t, "object", items["type"])
	assert.Len(t, items["properties"], 8)

	box := props["boundingBox"].(map[string]any)
	assert.Equal(t, "Detected region", box["description"])
	anyOf := box["anyOf"].([]any)
	require.Len(t, anyOf, 2)
	inner := anyOf[0].(map[string]any)
	assert.Equal(t, "object", inner["type"])
	assert.NotContains(t, inner, "description")
	assert.Equal(t, map[string]any{"type": "null"}, anyOf[1])

	details := props["details"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "string"}, details["additionalProperties"])

	extra := props["extra"].(map[string]any)
	assert.Equal(t, map[string]any{"type": "object"}, extra)

	assert.ElementsMatch(t, []any{"success", "books"}, out["required"])
}

func TestSchema_ArrayWithoutItems(t *testing.T) {
	minItems := 1
	s := translate.Schema(&schema.Node{Kind: schema.KindArray, MinItems: &minItems})
	assert.Equal(t, "array", s.Type)
	assert.Nil(t, s.Items)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "array", "minItems": 1}`, string(data))
}

func TestSchema_PreservesDeclarationOrder(t *testing.T) {
	mod, err := schema.DecodeModule("test.yaml", []byte(module))
	require.NoError(t, err)
	n, _ := mod.Lookup("BookSchema")

	data, err := json.Marshal(translate.Schema(n))
	require.NoError(t, err)

	text := string(data)
	last := -1
	for _, f := range n.Fields {
		idx := strings.Index(text, `"`+f.Name+`":`)
		require.NotEqual(t, -1, idx, f.Name)
		assert.Greater(t, idx, last, "property %s out of order", f.Name)
		last = idx
	}
}

func TestPropertyCount(t *testing.T) {
	mod, err := schema.DecodeModule("test.yaml", []byte(module))
	require.NoError(t, err)

	book, _ := mod.Lookup("BookSchema")
	assert.Equal(t, 8, translate.PropertyCount(translate.Schema(book)))

	nullable := book.Clone()
	nullable.Nullable = true
	assert.Equal(t, 8, translate.PropertyCount(translate.Schema(nullable)))

	assert.Equal(t, 0, translate.PropertyCount(translate.Schema(&schema.Node{Kind: schema.KindString})))
}
