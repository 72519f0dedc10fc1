package corrections

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"vidscribe/internal/config"
	"vidscribe/internal/logging"
	"vidscribe/internal/store"
)

// Outcome classifies the result of applying one correction.
type Outcome string

const (
	OutcomeUpdated        Outcome = "updated"
	OutcomeAlreadyCorrect Outcome = "already_correct"
	OutcomeNotFound       Outcome = "not_found"
	OutcomeNoThumbnail    Outcome = "no_thumbnail"
)

// ItemResult records the per-item outcome log for a correction run.
type ItemResult struct {
	VideoID  string
	Outcome  Outcome
	Previous string
	Applied  string
}

// Result summarizes one batch application. Counts are exact: re-applying the
// same batch yields Updated == 0 on the second pass.
type Result struct {
	RunID          string
	Batch          string
	Updated        int
	AlreadyCorrect int
	NotFound       int
	NoThumbnail    int
	Items          []ItemResult
}

// Applier writes correction batches into the store. A file lock serializes
// runs: the idempotence guarantee assumes nothing else mutates thumbnail text
// between the read-check and the write for a row.
type Applier struct {
	store  *store.Store
	logger *slog.Logger
	lock   *flock.Flock
}

// NewApplier builds an applier locking on the configured lock file.
func NewApplier(cfg *config.Config, st *store.Store, logger *slog.Logger) *Applier {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Applier{
		store:  st,
		logger: logger,
		lock:   flock.New(cfg.LockPath()),
	}
}

// Apply walks the batch in order: equal stored values are skipped as
// already correct, absent videos are skipped as not found, videos without a
// thumbnail URL are skipped because there is no thumbnail to describe, and
// everything else is written with a single statement. Per-item misses never
// fail the batch.
func (a *Applier) Apply(ctx context.Context, batch *Batch) (*Result, error) {
	if batch == nil {
		return nil, errors.New("batch is nil")
	}

	unlock, err := a.acquire()
	if err != nil {
		return nil, err
	}
	defer unlock()

	result := &Result{
		RunID: uuid.NewString(),
		Batch: batch.Name,
		Items: make([]ItemResult, 0, len(batch.Corrections)),
	}
	logger := a.logger.With(
		logging.String("run_id", result.RunID),
		logging.String("batch", batch.Name),
	)

	for _, correction := range batch.Corrections {
		item := ItemResult{VideoID: correction.VideoID, Applied: correction.Text}

		video, err := a.store.GetVideo(ctx, correction.VideoID)
		switch {
		case errors.Is(err, store.ErrNotFound):
			item.Outcome = OutcomeNotFound
			result.NotFound++
			logger.Warn("video not in archive", logging.String("video_id", correction.VideoID))
		case err != nil:
			logger.Error("video lookup failed",
				logging.String("video_id", correction.VideoID),
				logging.Error(err),
			)
			return nil, fmt.Errorf("apply batch %s: %w", batch.Name, err)
		case video.ThumbnailURL == "":
			item.Outcome = OutcomeNoThumbnail
			result.NoThumbnail++
			logger.Warn("video has no thumbnail", logging.String("video_id", correction.VideoID))
		case video.ThumbnailText == correction.Text:
			item.Outcome = OutcomeAlreadyCorrect
			item.Previous = video.ThumbnailText
			result.AlreadyCorrect++
		default:
			item.Previous = video.ThumbnailText
			if _, err := a.store.SetThumbnailText(ctx, correction.VideoID, correction.Text); err != nil {
				return nil, fmt.Errorf("apply batch %s: %w", batch.Name, err)
			}
			item.Outcome = OutcomeUpdated
			result.Updated++
			logger.Debug("thumbnail text updated",
				logging.String("video_id", correction.VideoID),
				logging.String("previous", item.Previous),
				logging.String("applied", correction.Text),
			)
		}
		result.Items = append(result.Items, item)
	}

	logger.Info("batch applied",
		logging.Int("updated", result.Updated),
		logging.Int("already_correct", result.AlreadyCorrect),
		logging.Int("not_found", result.NotFound),
		logging.Int("no_thumbnail", result.NoThumbnail),
	)
	return result, nil
}

// ClearMatching retracts thumbnail text on rows matching the SQL LIKE
// pattern, under the same writer lock as Apply.
func (a *Applier) ClearMatching(ctx context.Context, pattern string) (int64, error) {
	unlock, err := a.acquire()
	if err != nil {
		return 0, err
	}
	defer unlock()

	cleared, err := a.store.ClearThumbnailTextMatching(ctx, pattern)
	if err != nil {
		return 0, err
	}
	a.logger.Info("thumbnail text cleared",
		logging.String("pattern", pattern),
		logging.Int64("cleared", cleared),
	)
	return cleared, nil
}

func (a *Applier) acquire() (func(), error) {
	ok, err := a.lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire correction lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("correction lock %s is held by another run", a.lock.Path())
	}
	return func() { _ = a.lock.Unlock() }, nil
}
