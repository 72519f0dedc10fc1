// Package store persists the video archive in SQLite and exposes the access
// contract every other component goes through: video lookup, thumbnail-text
// writes, caption reads, substring search, and count aggregation.
//
// Writes are single-row and auto-committing; correction batches are
// independent and re-applying one is idempotent, so no multi-statement
// transactions are needed outside caption ingestion. The database holds the
// long-term archive: schema changes bump schemaVersion in schema.go and
// require a rebuild from a snapshot.
package store
