package validation_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookstrack/contracts/internal/validation"
)

const envelope = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "BendV3 API Schemas",
  "schemas": {
    "Book": {
      "type": "object",
      "properties": {
        "isbn": {"type": "string", "minLength": 13, "maxLength": 13},
        "provider": {"type": "string", "enum": ["alexandria", "google_books"]},
        "quality": {"type": "number", "minimum": 0, "maximum": 100}
      },
      "required": ["isbn", "provider"],
      "additionalProperties": false
    },
    "Tag": {"type": "string", "minLength": 1}
  }
}`

func TestCompileEnvelope(t *testing.T) {
	set, err := validation.CompileEnvelope([]byte(envelope))
	require.NoError(t, err)
	assert.Equal(t, []string{"Book", "Tag"}, set.Names())
}

func TestSet_ValidateJSON(t *testing.T) {
	set, err := validation.CompileEnvelope([]byte(envelope))
	require.NoError(t, err)

	tests := []struct {
		name    string
		entity  string
		data    string
		wantErr bool
	}{
		{"valid book", "Book", `{"isbn": "9780439708180", "provider": "alexandria", "quality": 95}`, false},
		{"short isbn", "Book", `{"isbn": "978043", "provider": "alexandria"}`, true},
		{"unknown provider", "Book", `{"isbn": "9780439708180", "provider": "amazon"}`, true},
		{"quality out of range", "Book", `{"isbn": "9780439708180", "provider": "isbndb", "quality": 101}`, true},
		{"missing required", "Book", `{"isbn": "9780439708180"}`, true},
		{"unexpected field", "Book", `{"isbn": "9780439708180", "provider": "alexandria", "rating": 5}`, true},
		{"valid tag", "Tag", `"fiction"`, false},
		{"not json", "Tag", `{`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := set.ValidateJSON(tt.entity, []byte(tt.data))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSet_UnknownEntity(t *testing.T) {
	set, err := validation.CompileEnvelope([]byte(envelope))
	require.NoError(t, err)

	err = set.Validate("Author", map[string]any{})
	assert.ErrorIs(t, err, validation.ErrUnknownEntity)
	assert.Contains(t, err.Error(), "Book, Tag")
}

func TestCompileAll_InvalidSchema(t *testing.T) {
	_, err := validation.CompileAll(map[string]json.RawMessage{
		"Good": json.RawMessage(`{"type": "string"}`),
		"Bad":  json.RawMessage(`{"type": "string", "minLength": "thirteen"}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema Bad")
}

func TestCompileEnvelope_Errors(t *testing.T) {
	_, err := validation.CompileEnvelope([]byte(`not json`))
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = validation.CompileEnvelope([]byte(`{"schemas": {}}`))
	assert.ErrorContains(t, err, "no schemas")
}
