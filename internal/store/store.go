package store

import "errors"

// Submission is a single persisted training exchange: what the user
// submitted, what the coach generated, and when. Records are immutable
// after creation. Field declaration order fixes the serialized field
// order, which keeps saved files diffable.
type Submission struct {
	Timestamp string         `json:"timestamp"`
	Module    string         `json:"module"`
	UserText  string         `json:"user_text"`
	AIText    string         `json:"ai_text"`
	Meta      map[string]any `json:"meta"`
}

// Sentinel errors for the three failure classes of a store. Callers
// branch with errors.Is; no store operation retries internally.
var (
	ErrWrite   = errors.New("store: write failed")
	ErrRead    = errors.New("store: read failed")
	ErrCorrupt = errors.New("store: record corrupt")
)

// Store abstracts persistence of submissions.
// Implementations can be file-based, database, etc.
// The module value is opaque to the store: membership in the training
// module set is the caller's business.
// ListRecent returns record locations newest first; an empty store
// yields an empty slice, not an error.
type Store interface {
	Save(module, userText, aiText string, meta map[string]any) (string, error)
	ListRecent(limit int) ([]string, error)
	Load(path string) (Submission, error)
}
