package drift

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bookstrack/contracts/internal/mirror"
)

// MirrorShapes flattens the reflected schema of every mirrored type
func MirrorShapes() (map[string]Shape, error) {
	docs, err := mirror.SchemasJSON()
	if err != nil {
		return nil, err
	}
	return ShapesFromJSON(docs)
}

// SnapshotShapes flattens the schemas of a generated fixture envelope
func SnapshotShapes(path string) (map[string]Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var envelope struct {
		Schemas map[string]json.RawMessage `json:"schemas"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", path, err)
	}
	if len(envelope.Schemas) == 0 {
		return nil, fmt.Errorf("snapshot %s has no schemas", path)
	}
	return ShapesFromJSON(envelope.Schemas)
}
