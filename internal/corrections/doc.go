// Package corrections applies curated thumbnail-text batches to the archive.
//
// A batch is an ordered list of (video id, text) pairs validated before any
// write: empty ids, empty texts, and duplicate ids reject the whole batch.
// Application is idempotent per batch and last-writer-wins across batches;
// only invocation order decides conflicts between overlapping batches.
package corrections
