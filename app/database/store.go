package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Store is the path-addressed document store every service runs against.
// Paths are slash-separated namespaces ("users/{uid}",
// "students/{teacherId}/{studentId}"); each record is one whole document.
type Store interface {
	// Get returns the document at path, or nil when absent.
	Get(path string) (json.RawMessage, error)
	// Set writes the whole document at path, replacing any previous value.
	Set(path string, value any) error
	// Update shallow-merges the named fields into the document at path,
	// creating it when absent. Nil-valued fields are pruned before the
	// write ever reaches the store.
	Update(path string, fields map[string]any) error
	// Remove hard-deletes the document at path. Removing an absent path is
	// a no-op.
	Remove(path string) error
	// Children returns the direct children of a namespace as id -> doc.
	// An empty namespace yields an empty, non-nil map.
	Children(path string) (map[string]json.RawMessage, error)
	// PushKey generates a unique id for a new record.
	PushKey() string
}

// PGStore keeps every document as a row in a single JSONB table.
type PGStore struct {
	db *sql.DB
}

func NewPGStore(db *sql.DB) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Get(path string) (json.RawMessage, error) {
	var doc []byte
	err := s.db.QueryRow(`SELECT doc FROM documents WHERE path = $1`, path).Scan(&doc)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *PGStore) Set(path string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", path, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO documents (path, doc) VALUES ($1, $2)
		ON CONFLICT (path) DO UPDATE SET doc = EXCLUDED.doc
	`, path, doc)
	return err
}

func (s *PGStore) Update(path string, fields map[string]any) error {
	patch, err := json.Marshal(pruneNil(fields))
	if err != nil {
		return fmt.Errorf("marshal patch %s: %w", path, err)
	}
	_, err = s.db.Exec(`
		INSERT INTO documents (path, doc) VALUES ($1, $2)
		ON CONFLICT (path) DO UPDATE SET doc = documents.doc || EXCLUDED.doc
	`, path, patch)
	return err
}

func (s *PGStore) Remove(path string) error {
	_, err := s.db.Exec(`DELETE FROM documents WHERE path = $1`, path)
	return err
}

func (s *PGStore) Children(path string) (map[string]json.RawMessage, error) {
	prefix := path + "/"
	rows, err := s.db.Query(`SELECT path, doc FROM documents WHERE path LIKE $1`, prefix+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	children := make(map[string]json.RawMessage)
	for rows.Next() {
		var p string
		var doc []byte
		if err := rows.Scan(&p, &doc); err != nil {
			return nil, err
		}
		key := strings.TrimPrefix(p, prefix)
		// only direct children; deeper records belong to nested namespaces
		if strings.Contains(key, "/") {
			continue
		}
		children[key] = doc
	}
	return children, rows.Err()
}

func (s *PGStore) PushKey() string {
	return uuid.NewString()
}

// pruneNil drops nil-valued fields so a record never carries an undefined
// value. Nested maps are pruned the same way.
func pruneNil(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		if v == nil {
			continue
		}
		if m, ok := v.(map[string]any); ok {
			out[k] = pruneNil(m)
			continue
		}
		out[k] = v
	}
	return out
}

// decodeInto unmarshals a raw document into dst, annotating the path on
// failure.
func decodeInto(path string, raw json.RawMessage, dst any) error {
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// decodeChildren turns a Children result into a typed map. Records that
// fail to decode fail the whole read; partial collections never reach
// callers.
func decodeChildren[T any](path string, raw map[string]json.RawMessage) (map[string]T, error) {
	out := make(map[string]T, len(raw))
	for id, doc := range raw {
		var v T
		if err := decodeInto(path+"/"+id, doc, &v); err != nil {
			return nil, err
		}
		out[id] = v
	}
	return out, nil
}
