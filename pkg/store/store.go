package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("document not found")

	// ErrMissingID is returned by Put when the document carries no id.
	ErrMissingID = errors.New("document id must not be empty")
)

// Document wraps a serialized visual graph with storage metadata. The
// payload is opaque to the store; callers decode it with pkg/io.
type Document struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Data      []byte    `json:"data" bson:"data"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Info is the metadata view of a stored document, returned by List.
type Info struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store is the interface for document storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Put stores a document, replacing any existing document with the
	// same id.
	Put(ctx context.Context, doc *Document) error

	// Get retrieves a document by id. Returns ErrNotFound if absent.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns metadata for all stored documents.
	List(ctx context.Context) ([]Info, error)

	// Delete removes a document. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close() error
}

// NewID returns a fresh document id.
func NewID() string {
	return uuid.NewString()
}

// NewDocument wraps serialized document bytes with a fresh id and
// timestamps.
func NewDocument(name string, data []byte) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        NewID(),
		Name:      name,
		Data:      data,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
