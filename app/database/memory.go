package database

import (
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory Store with the same semantics as PGStore.
// It backs the test suite and needs no database.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(path string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[path]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (s *MemoryStore) Set(path string, value any) error {
	doc, err := json.Marshal(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[path] = doc
	return nil
}

func (s *MemoryStore) Update(path string, fields map[string]any) error {
	patch := pruneNil(fields)

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]any)
	if existing, ok := s.docs[path]; ok {
		if err := json.Unmarshal(existing, &merged); err != nil {
			return err
		}
	}
	for k, v := range patch {
		merged[k] = v
	}
	doc, err := json.Marshal(merged)
	if err != nil {
		return err
	}
	s.docs[path] = doc
	return nil
}

func (s *MemoryStore) Remove(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, path)
	return nil
}

func (s *MemoryStore) Children(path string) (map[string]json.RawMessage, error) {
	prefix := path + "/"
	s.mu.RLock()
	defer s.mu.RUnlock()

	children := make(map[string]json.RawMessage)
	for p, doc := range s.docs {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		key := strings.TrimPrefix(p, prefix)
		if strings.Contains(key, "/") {
			continue
		}
		children[key] = doc
	}
	return children, nil
}

func (s *MemoryStore) PushKey() string {
	return uuid.NewString()
}
