package history

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"

	"jinryoku-trainer/internal/store"
)

// Entry is one selectable row of the saved history. The label is the
// record's base name, which already carries timestamp and module, so no
// extra lookup is needed to tell records apart. Err is set when the
// record exists but cannot be loaded; the entry stays listed so the
// caller can tell the user which record is bad.
type Entry struct {
	Label string
	Path  string
	Err   error
}

// Browser presents the store's contents for selection and re-export.
// It never mutates the store.
type Browser struct {
	store store.Store
}

func NewBrowser(s store.Store) *Browser {
	return &Browser{store: s}
}

// Refresh lists up to limit records, newest first. A corrupt record is
// flagged on its entry and never aborts the listing of the others.
func (b *Browser) Refresh(limit int) ([]Entry, error) {
	paths, err := b.store.ListRecent(limit)
	if err != nil {
		return nil, err
	}
	entries := make([]Entry, 0, len(paths))
	for _, p := range paths {
		e := Entry{Label: filepath.Base(p), Path: p}
		if _, err := b.store.Load(p); err != nil {
			e.Err = err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (b *Browser) Preview(path string) (store.Submission, error) {
	return b.store.Load(path)
}

// Export re-serializes one record as a downloadable payload, suggested
// file name included. The payload depends only on the record content,
// so exporting an unchanged record twice yields identical bytes.
func (b *Browser) Export(path string) (string, []byte, error) {
	sub, err := b.store.Load(path)
	if err != nil {
		return "", nil, err
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(sub); err != nil {
		return "", nil, fmt.Errorf("encode export: %w", err)
	}
	return filepath.Base(path), buf.Bytes(), nil
}
