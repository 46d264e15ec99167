package metadata

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"strings"
	"sync"

	"github.com/gofrs/flock"

	"starshelf/internal/faults"
)

// Store performs serialized read-modify-write edits against one metadata
// file. Every edit reopens the file, merges the change in, and rewrites the
// whole document. The mutex queues goroutines sharing this Store; the file
// lock queues other processes. Both are needed: flock is advisory between
// processes only, and Lock on an already-held flock.Flock returns
// immediately instead of blocking.
type Store struct {
	path string
	mu   sync.Mutex
	lock *flock.Flock
}

// NewStore returns a store for the metadata file at path. The lock file lives
// next to the metadata file.
func NewStore(path string) *Store {
	return &Store{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// SaveNote sets or clears the free-text notes of one object. An empty note
// removes the key. Edits against a missing metadata file are dropped.
func (s *Store) SaveNote(catalogName, objectID, notes string) error {
	return s.update(catalogName, objectID, func(entry map[string]any) {
		if strings.TrimSpace(notes) != "" {
			entry["notes"] = notes
		} else {
			delete(entry, "notes")
		}
	})
}

// SaveImageNote sets or clears the note attached to one image filename.
func (s *Store) SaveImageNote(catalogName, objectID, imageName, notes string) error {
	return s.update(catalogName, objectID, func(entry map[string]any) {
		imageNotes, ok := entry["image_notes"].(map[string]any)
		if !ok {
			imageNotes = make(map[string]any)
			entry["image_notes"] = imageNotes
		}
		if strings.TrimSpace(notes) != "" {
			imageNotes[imageName] = notes
		} else {
			delete(imageNotes, imageName)
		}
	})
}

// SaveThumbnail records the chosen thumbnail filename for one object.
func (s *Store) SaveThumbnail(catalogName, objectID, thumbnailName string) error {
	return s.update(catalogName, objectID, func(entry map[string]any) {
		entry["thumbnail"] = thumbnailName
	})
}

// update applies mutate to the (catalog, object) entry under the file lock.
// The document is handled as generic JSON so fields this package does not
// model survive the rewrite untouched.
func (s *Store) update(catalogName, objectID string, mutate func(entry map[string]any)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return faults.Wrap(faults.ErrFilesystem, "metadata", "stat", s.path, err)
	}

	if err := s.lock.Lock(); err != nil {
		return faults.Wrap(faults.ErrFilesystem, "metadata", "lock", s.path, err)
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := s.readDocument()
	if err != nil {
		return err
	}

	catalog, ok := data[catalogName].(map[string]any)
	if !ok {
		catalog = make(map[string]any)
		data[catalogName] = catalog
	}
	entry, ok := catalog[objectID].(map[string]any)
	if !ok {
		entry = make(map[string]any)
		catalog[objectID] = entry
	}
	mutate(entry)

	return s.writeDocument(data)
}

func (s *Store) readDocument() (map[string]any, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		return nil, faults.Wrap(faults.ErrFilesystem, "metadata", "read", s.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return make(map[string]any), nil
	}
	file, err := Parse(s.path, raw)
	if err != nil {
		return nil, err
	}
	data := make(map[string]any, len(file.sections))
	for key, section := range file.sections {
		var value any
		if err := json.Unmarshal(section, &value); err != nil {
			return nil, faults.Wrap(faults.ErrData, "metadata", "parse section", key, err)
		}
		data[key] = value
	}
	return data, nil
}

// writeDocument persists the document UTF-8, indented, without HTML escaping
// so object names and notes stay human-readable in the file.
func (s *Store) writeDocument(data map[string]any) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return faults.Wrap(faults.ErrData, "metadata", "encode", s.path, err)
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0o644); err != nil {
		return faults.Wrap(faults.ErrFilesystem, "metadata", "write", s.path, err)
	}
	return nil
}
