package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upstreamRoot is a recorded BendV3 checkout holding the v3 schema module
var upstreamRoot = filepath.Join("..", "..", "internal", "drift", "testdata", "bendv3")

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-dir", t.TempDir()}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func setEnv(t *testing.T) string {
	t.Helper()
	output := filepath.Join(t.TempDir(), "fixtures", "bendv3_schemas.json")
	t.Setenv("BENDV3_PATH", upstreamRoot)
	t.Setenv("BENDV3_SCHEMA_SUBPATH", "src/api-v3/schemas/book.yaml")
	t.Setenv("BENDV3_EXPORTS", "Book=BookSchema,ErrorResponse=ErrorResponseSchema")
	t.Setenv("SCHEMAGEN_OUTPUT", output)
	t.Setenv("SCHEMAGEN_LOG_LEVEL", "error")
	return output
}

func TestGenerateAndDrift(t *testing.T) {
	output := setEnv(t)

	out, err := run(t, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated "+output)
	assert.Contains(t, out, "Book: 17 properties")
	assert.Contains(t, out, "ErrorResponse: 2 properties")
	assert.FileExists(t, output)

	out, err = run(t, "drift")
	require.NoError(t, err, out)
	assert.Contains(t, out, "compared 2 entities: Book, ErrorResponse")
	assert.Contains(t, out, "no drift")

	_, err = run(t, "drift", "--strict")
	assert.ErrorIs(t, err, errDrift)

	out, err = run(t, "drift", "--live", "--export", "WorkDTO=WorkDTOSchema")
	require.NoError(t, err, out)
	assert.Contains(t, out, "compared 1 entities: WorkDTO")
}

func TestDrift_DetectsUpstreamChange(t *testing.T) {
	setEnv(t)
	root := t.TempDir()
	module := filepath.Join(root, "src", "api-v3", "schemas", "book.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(module), 0o755))
	require.NoError(t, os.WriteFile(module, []byte(`
exports:
  BookSchema:
    type: object
    properties:
      isbn: {type: string, length: 13}
      series: {type: string, optional: true}
`), 0o644))

	out, err := run(t, "drift", "--live", "--bendv3-path", root, "--export", "Book=BookSchema")
	assert.ErrorIs(t, err, errDrift)
	assert.Contains(t, out, "Book.series: added upstream (string)")
	assert.Contains(t, out, "Book.title: removed upstream")
}

func TestGenerate_MissingExport(t *testing.T) {
	output := setEnv(t)

	_, err := run(t, "generate", "--export", "Book=BookSchemaV4")
	assert.ErrorContains(t, err, "BookSchemaV4 not found in module exports")
	assert.Contains(t, hint(err), "BENDV3_PATH")
	assert.NoFileExists(t, output)
}

func TestGenerate_MissingCheckout(t *testing.T) {
	setEnv(t)

	_, err := run(t, "generate", "--bendv3-path", filepath.Join(t.TempDir(), "nowhere"))
	assert.ErrorContains(t, err, "failed to load schema module")
	assert.Contains(t, hint(err), "BENDV3_PATH")
	assert.Empty(t, hint(errDrift))
}

func TestValidate(t *testing.T) {
	output := setEnv(t)
	_, err := run(t, "generate")
	require.NoError(t, err)

	dir := t.TempDir()
	valid := filepath.Join(dir, "valid.json")
	invalid := filepath.Join(dir, "invalid.json")
	require.NoError(t, os.WriteFile(valid, []byte(`{
		"isbn": "9780439708180",
		"title": "Harry Potter and the Sorcerers Stone",
		"authors": ["J.K. Rowling"],
		"provider": "alexandria",
		"quality": 95
	}`), 0o644))
	require.NoError(t, os.WriteFile(invalid, []byte(`{
		"isbn": "9780439708180",
		"title": "Harry Potter and the Sorcerers Stone",
		"authors": ["J.K. Rowling"],
		"provider": "amazon",
		"quality": 95
	}`), 0o644))

	out, err := run(t, "validate", "--fixture", output, "--entity", "Book", valid)
	require.NoError(t, err)
	assert.Contains(t, out, "Compiled 2 schemas")
	assert.Contains(t, out, "✅ "+valid)

	out, err = run(t, "validate", "--entity", "Book", valid, invalid)
	assert.ErrorContains(t, err, "1 of 2 files")
	assert.Contains(t, out, "❌ "+invalid)

	_, err = run(t, "validate", valid)
	assert.ErrorContains(t, err, "--entity is required")
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "schemagen dev")
}
