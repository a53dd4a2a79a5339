package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore persists documents as JSON files in a directory, one file per
// document id. It is the default backend for CLI usage.
type FileStore struct {
	dir string
}

// NewFileStore creates a file-based store in the given directory.
// The directory is created if it doesn't exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Dir returns the backing directory.
func (s *FileStore) Dir() string { return s.dir }

// Put writes the document to <dir>/<id>.json.
func (s *FileStore) Put(ctx context.Context, doc *Document) error {
	if doc.ID == "" {
		return ErrMissingID
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document %s: %w", doc.ID, err)
	}
	return os.WriteFile(s.path(doc.ID), data, 0o644)
}

// Get reads the document file for id.
func (s *FileStore) Get(ctx context.Context, id string) (*Document, error) {
	data, err := os.ReadFile(s.path(id))
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode document %s: %w", id, err)
	}
	return &doc, nil
}

// List scans the directory for document files.
func (s *FileStore) List(ctx context.Context) ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		doc, err := s.Get(ctx, id)
		if err != nil {
			// Unreadable entries are skipped rather than failing the listing.
			continue
		}
		infos = append(infos, Info{ID: doc.ID, Name: doc.Name, UpdatedAt: doc.UpdatedAt})
	}
	return infos, nil
}

// Delete removes the document file for id.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

// Close does nothing for the file store.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) path(id string) string {
	// Document ids are uuids; filepath.Base guards against ids smuggling
	// path separators from untrusted input.
	return filepath.Join(s.dir, filepath.Base(id)+".json")
}
