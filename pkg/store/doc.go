// Package store persists serialized visual graph documents.
//
// The Store interface abstracts over backends so the CLI and HTTP server
// share one persistence surface:
//   - memory: in-process map for tests and ephemeral serving
//   - file: JSON files in a directory for CLI usage
//   - redis: Redis-backed storage for multi-instance deployments
//   - mongo: MongoDB-backed storage when documents need server-side queries
//
// Stores hold opaque serialized bytes plus light metadata; they never
// decode or validate the document payload. Validation belongs to the
// callers that parse documents out of the store.
package store
