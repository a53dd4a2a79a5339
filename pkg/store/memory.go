package store

import (
	"context"
	"sync"
)

// MemoryStore keeps documents in an in-process map. Useful for tests and
// for serving without configured persistence.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string]*Document
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string]*Document)}
}

// Put stores a copy of the document.
func (s *MemoryStore) Put(ctx context.Context, doc *Document) error {
	if doc.ID == "" {
		return ErrMissingID
	}
	cp := *doc
	cp.Data = append([]byte(nil), doc.Data...)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = &cp
	return nil
}

// Get retrieves a copy of the document.
func (s *MemoryStore) Get(ctx context.Context, id string) (*Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *doc
	cp.Data = append([]byte(nil), doc.Data...)
	return &cp, nil
}

// List returns metadata for all stored documents.
func (s *MemoryStore) List(ctx context.Context) ([]Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	infos := make([]Info, 0, len(s.docs))
	for _, doc := range s.docs {
		infos = append(infos, Info{ID: doc.ID, Name: doc.Name, UpdatedAt: doc.UpdatedAt})
	}
	return infos, nil
}

// Delete removes a document.
func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close() error { return nil }
