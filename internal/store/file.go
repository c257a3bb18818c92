package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"
)

const (
	recordExt       = ".json"
	timestampLayout = "20060102_150405"
)

// recordName matches generated record file names only, so stray files
// in the submissions directory never show up as history.
var recordName = regexp.MustCompile(`^\d{8}_\d{6}_.+\.json$`)

// FileStore keeps one JSON file per submission under a single root
// directory. The root is created on demand.
type FileStore struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure dir: %w", ErrWrite, err)
	}
	return &FileStore{dir: dir, now: time.Now}, nil
}

// Save persists one submission as its own file and returns the path
// written. The identifier is the local creation time at second
// resolution joined with the module name; two saves for the same module
// within the same second collide and the later one wins. The record is
// written to a temp file and renamed into place so a concurrent reader
// never observes a torn record.
func (s *FileStore) Save(module, userText, aiText string, meta map[string]any) (string, error) {
	if module == "" {
		return "", fmt.Errorf("%w: empty module", ErrWrite)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: ensure dir: %w", ErrWrite, err)
	}
	ts := s.now().Format(timestampLayout)
	sub := Submission{
		Timestamp: ts,
		Module:    module,
		UserText:  userText,
		AIText:    aiText,
		Meta:      meta,
	}
	path := filepath.Join(s.dir, ts+"_"+module+recordExt)
	tmp, err := os.CreateTemp(s.dir, ".tmp-*")
	if err != nil {
		return "", fmt.Errorf("%w: create temp: %w", ErrWrite, err)
	}
	enc := json.NewEncoder(tmp)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sub); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: encode: %w", ErrWrite, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: close temp: %w", ErrWrite, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", fmt.Errorf("%w: publish: %w", ErrWrite, err)
	}
	return path, nil
}

// ListRecent returns up to limit record paths, newest first. Ordering
// relies on the timestamp prefix being fixed-width and zero-padded, so
// plain descending string sort equals reverse-chronological order.
func (s *FileStore) ListRecent(limit int) ([]string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: ensure dir: %w", ErrRead, err)
	}
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: read dir: %w", ErrRead, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !recordName.MatchString(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	if limit >= 0 && len(names) > limit {
		names = names[:limit]
	}
	paths := make([]string, 0, len(names))
	for _, n := range names {
		paths = append(paths, filepath.Join(s.dir, n))
	}
	return paths, nil
}

// Load reads one record back. A missing meta decodes to an empty map
// and missing string fields to "", so partially written or foreign
// files do not crash the browser.
func (s *FileStore) Load(path string) (Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Submission{}, fmt.Errorf("%w: open %s: %w", ErrRead, filepath.Base(path), err)
	}
	var sub Submission
	if err := json.Unmarshal(data, &sub); err != nil {
		return Submission{}, fmt.Errorf("%w: %s: %w", ErrCorrupt, filepath.Base(path), err)
	}
	if sub.Meta == nil {
		sub.Meta = map[string]any{}
	}
	return sub, nil
}
