// Package report aggregates archive counts for operator visibility. Reports
// are derived on demand; nothing is cached between invocations.
package report

import (
	"context"

	"vidscribe/internal/classify"
	"vidscribe/internal/store"
)

// Status summarizes archive coverage and the classification breakdown.
type Status struct {
	Videos           int
	WithThumbnail    int
	WithText         int
	Captions         int
	PercentProcessed float64
	Classification   classify.Breakdown
}

// Gather recomputes the status report from the store.
func Gather(ctx context.Context, st *store.Store, rules []classify.Rule, sampleLimit int) (*Status, error) {
	counts, err := st.Counts(ctx)
	if err != nil {
		return nil, err
	}

	texts, err := st.ThumbnailTexts(ctx)
	if err != nil {
		return nil, err
	}

	status := &Status{
		Videos:         counts.Videos,
		WithThumbnail:  counts.WithThumbnail,
		WithText:       counts.WithText,
		Captions:       counts.Captions,
		Classification: classify.Run(texts, rules, sampleLimit),
	}
	if counts.WithThumbnail > 0 {
		status.PercentProcessed = 100 * float64(counts.WithText) / float64(counts.WithThumbnail)
	}
	return status, nil
}
