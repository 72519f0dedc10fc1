// Package classify buckets stored thumbnail text into quality categories
// using an ordered substring rule list: the consolidated replacement for the
// per-report predicates that used to be copied around.
package classify
