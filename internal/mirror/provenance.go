package mirror

import "time"

// Provenance of the mirrored declarations. Update both values whenever the
// mirror is re-synced from upstream.
var Provenance = struct {
	SourcePath string
	SyncedAt   string
}{
	SourcePath: "../bendv3",
	SyncedAt:   "2026-01-05T17:45:05Z",
}

// SyncedAt parses Provenance.SyncedAt
func SyncedAt() time.Time {
	t, err := time.Parse(time.RFC3339, Provenance.SyncedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
