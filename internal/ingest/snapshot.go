// Package ingest loads archive snapshots: JSON dumps of videos and captions
// produced by an external collection process.
package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"vidscribe/internal/logging"
	"vidscribe/internal/store"
)

// SnapshotVideo mirrors one video record in a snapshot file.
type SnapshotVideo struct {
	VideoID      string `json:"video_id"`
	Title        string `json:"title"`
	UploadDate   string `json:"upload_date"`
	SourceURL    string `json:"source_url,omitempty"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
}

// SnapshotCaption mirrors one caption record in a snapshot file.
type SnapshotCaption struct {
	VideoID        string  `json:"video_id"`
	SequenceNumber int     `json:"sequence_number"`
	StartTime      float64 `json:"start_time"`
	EndTime        float64 `json:"end_time"`
	Text           string  `json:"text"`
}

// Snapshot is the on-disk interchange format.
type Snapshot struct {
	Videos   []SnapshotVideo   `json:"videos"`
	Captions []SnapshotCaption `json:"captions"`
}

// Result reports how much of a snapshot landed in the store.
type Result struct {
	Videos   int
	Captions int
}

// LoadFile parses a snapshot from disk.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	var snapshot Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, store.Wrap(store.ErrIntegrity, "ingest", "parse snapshot", path, err)
	}
	return &snapshot, nil
}

// Apply upserts the snapshot's videos and then inserts its captions. Captions
// referencing ids absent from both the snapshot and the store reject the
// whole caption set before any caption row is written.
func Apply(ctx context.Context, st *store.Store, snapshot *Snapshot, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	for _, sv := range snapshot.Videos {
		if strings.TrimSpace(sv.VideoID) == "" {
			return nil, store.Wrap(store.ErrIntegrity, "ingest", "apply snapshot", "video with empty id", nil)
		}
		uploaded, err := parseUploadDate(sv.UploadDate)
		if err != nil {
			return nil, store.Wrap(store.ErrIntegrity, "ingest", "apply snapshot",
				fmt.Sprintf("video %s has bad upload_date %q", sv.VideoID, sv.UploadDate), err)
		}
		video := store.Video{
			ID:           sv.VideoID,
			Title:        sv.Title,
			UploadDate:   uploaded,
			SourceURL:    sv.SourceURL,
			ThumbnailURL: sv.ThumbnailURL,
		}
		if err := st.UpsertVideo(ctx, video); err != nil {
			return nil, err
		}
	}

	captions := make([]store.Caption, 0, len(snapshot.Captions))
	for _, sc := range snapshot.Captions {
		captions = append(captions, store.Caption{
			VideoID:        sc.VideoID,
			SequenceNumber: sc.SequenceNumber,
			StartTime:      sc.StartTime,
			EndTime:        sc.EndTime,
			Text:           sc.Text,
		})
	}
	if err := st.InsertCaptions(ctx, captions); err != nil {
		return nil, err
	}

	result := &Result{Videos: len(snapshot.Videos), Captions: len(captions)}
	logger.Info("snapshot ingested",
		logging.Int("videos", result.Videos),
		logging.Int("captions", result.Captions),
	)
	return result, nil
}

func parseUploadDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
