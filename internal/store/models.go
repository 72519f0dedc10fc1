package store

import "time"

// NoVisibleText is the sentinel stored when a thumbnail has been reviewed and
// verified to carry no readable text. It is distinct from an unset value,
// which means the thumbnail has not been processed yet.
const NoVisibleText = "no visible text"

// Video represents one unit of content in the archive.
//
// ThumbnailURL and ThumbnailText use the empty string for NULL: a video
// without a thumbnail URL has no thumbnail and is excluded from correction
// and classification; empty thumbnail text means "unprocessed".
type Video struct {
	ID            string
	Title         string
	UploadDate    time.Time
	SourceURL     string
	ThumbnailURL  string
	ThumbnailText string
}

// Caption is one timestamped transcript fragment belonging to a video.
// Captions are written once at ingestion and read-only afterwards.
type Caption struct {
	ID             int64
	VideoID        string
	SequenceNumber int
	StartTime      float64
	EndTime        float64
	Text           string
}

// VideoFilter narrows ListVideos results. Zero value lists everything.
type VideoFilter struct {
	// HasThumbnail keeps only videos with a thumbnail URL.
	HasThumbnail bool
	// HasText keeps only videos with non-empty thumbnail text.
	HasText bool
	// MissingText keeps only videos with a thumbnail but no text yet.
	MissingText bool
}

// ThumbnailText pairs a video with its stored description for classification.
type ThumbnailText struct {
	VideoID string
	Title   string
	Text    string
}

// CaptionHit is one caption search result.
type CaptionHit struct {
	VideoID   string
	Title     string
	StartTime float64
	Text      string
}

// ThumbnailHit is one thumbnail-text search result.
type ThumbnailHit struct {
	VideoID       string
	Title         string
	UploadDate    time.Time
	ThumbnailText string
}

// Counts aggregates archive totals for status reporting. WithText counts
// only videos that also have a thumbnail.
type Counts struct {
	Videos        int
	WithThumbnail int
	WithText      int
	Captions      int
}
