package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
)

const videoColumns = "video_id, title, upload_date, source_url, thumbnail_url, thumbnail_text"

// GetVideo fetches a video by identifier. Absent ids return ErrNotFound.
func (s *Store) GetVideo(ctx context.Context, id string) (*Video, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+videoColumns+` FROM videos WHERE video_id = ?`, id)
	video, err := scanVideo(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, Wrap(ErrNotFound, "store", "get video", id, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("get video: %w", err)
	}
	return video, nil
}

// UpsertVideo inserts a video or updates its metadata when the id already
// exists. Thumbnail text is preserved on update; only the correction applier
// mutates it.
func (s *Store) UpsertVideo(ctx context.Context, video Video) error {
	if strings.TrimSpace(video.ID) == "" {
		return Wrap(ErrIntegrity, "store", "upsert video", "empty video id", nil)
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO videos (video_id, title, upload_date, source_url, thumbnail_url, thumbnail_text)
         VALUES (?, ?, ?, ?, ?, ?)
         ON CONFLICT(video_id) DO UPDATE SET
             title = excluded.title,
             upload_date = excluded.upload_date,
             source_url = excluded.source_url,
             thumbnail_url = excluded.thumbnail_url`,
		video.ID,
		video.Title,
		// Fixed-width RFC3339 keeps lexical ORDER BY upload_date in
		// chronological order; RFC3339Nano drops trailing zeros.
		video.UploadDate.UTC().Format(time.RFC3339),
		nullableString(video.SourceURL),
		nullableString(video.ThumbnailURL),
		nullableString(video.ThumbnailText),
	)
	if err != nil {
		return fmt.Errorf("upsert video: %w", err)
	}
	return nil
}

// SetThumbnailText writes the corrected description for a video. The empty
// string is rejected: absence of text is represented by NULL, and a verified
// blank thumbnail uses the NoVisibleText sentinel. Returns the number of rows
// affected; zero means the id was absent, which is not an error here.
func (s *Store) SetThumbnailText(ctx context.Context, id, text string) (int64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, Wrap(ErrIntegrity, "store", "set thumbnail text", "empty text for "+id, nil)
	}
	res, err := s.db.ExecContext(ctx, `UPDATE videos SET thumbnail_text = ? WHERE video_id = ?`, text, id)
	if err != nil {
		return 0, fmt.Errorf("set thumbnail text: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return affected, nil
}

// ClearThumbnailTextMatching nulls thumbnail text on every row whose current
// value matches the SQL LIKE pattern, and reports the count cleared. Rows
// outside the pattern are untouched.
func (s *Store) ClearThumbnailTextMatching(ctx context.Context, pattern string) (int64, error) {
	if strings.TrimSpace(pattern) == "" {
		return 0, Wrap(ErrInvalidQuery, "store", "clear thumbnail text", "empty pattern", nil)
	}
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE videos SET thumbnail_text = NULL WHERE thumbnail_text IS NOT NULL AND thumbnail_text LIKE ?`,
		pattern,
	)
	if err != nil {
		return 0, fmt.Errorf("clear thumbnail text: %w", err)
	}
	return res.RowsAffected()
}

// ListVideos returns videos matching the filter ordered by upload date, then
// title, then id for determinism.
func (s *Store) ListVideos(ctx context.Context, filter VideoFilter) ([]*Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos`
	var clauses []string
	if filter.HasThumbnail {
		clauses = append(clauses, `thumbnail_url IS NOT NULL`)
	}
	if filter.HasText {
		clauses = append(clauses, `thumbnail_text IS NOT NULL AND thumbnail_text <> ''`)
	}
	if filter.MissingText {
		clauses = append(clauses, `thumbnail_url IS NOT NULL AND (thumbnail_text IS NULL OR thumbnail_text = '')`)
	}
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY upload_date, title, video_id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	defer rows.Close()

	var videos []*Video
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}
	return videos, rows.Err()
}

// ThumbnailTexts returns every row with a thumbnail and non-empty thumbnail
// text for classification, ordered by video id. Videos without a thumbnail
// URL have nothing to classify and never appear here, even if a stale text
// value is sitting on the row.
func (s *Store) ThumbnailTexts(ctx context.Context) ([]ThumbnailText, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT video_id, title, thumbnail_text FROM videos
         WHERE thumbnail_url IS NOT NULL
           AND thumbnail_text IS NOT NULL AND thumbnail_text <> ''
         ORDER BY video_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("thumbnail texts: %w", err)
	}
	defer rows.Close()

	var texts []ThumbnailText
	for rows.Next() {
		var tt ThumbnailText
		if err := rows.Scan(&tt.VideoID, &tt.Title, &tt.Text); err != nil {
			return nil, err
		}
		texts = append(texts, tt)
	}
	return texts, rows.Err()
}

// Counts aggregates archive totals for the status report. Counts are exact,
// computed on demand.
func (s *Store) Counts(ctx context.Context) (Counts, error) {
	var counts Counts
	row := s.db.QueryRowContext(ctx, `
        SELECT
            COUNT(1),
            COUNT(thumbnail_url),
            SUM(CASE WHEN thumbnail_url IS NOT NULL
                      AND thumbnail_text IS NOT NULL AND thumbnail_text <> ''
                     THEN 1 ELSE 0 END)
        FROM videos`)
	var withText sql.NullInt64
	if err := row.Scan(&counts.Videos, &counts.WithThumbnail, &withText); err != nil {
		return Counts{}, fmt.Errorf("video counts: %w", err)
	}
	counts.WithText = int(withText.Int64)

	row = s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM captions`)
	if err := row.Scan(&counts.Captions); err != nil {
		return Counts{}, fmt.Errorf("caption count: %w", err)
	}
	return counts, nil
}

func scanVideo(scanner interface{ Scan(dest ...any) error }) (*Video, error) {
	var (
		id            string
		title         string
		uploadRaw     string
		sourceURL     sql.NullString
		thumbnailURL  sql.NullString
		thumbnailText sql.NullString
	)
	if err := scanner.Scan(&id, &title, &uploadRaw, &sourceURL, &thumbnailURL, &thumbnailText); err != nil {
		return nil, err
	}

	video := &Video{
		ID:            id,
		Title:         title,
		SourceURL:     sourceURL.String,
		ThumbnailURL:  thumbnailURL.String,
		ThumbnailText: thumbnailText.String,
	}
	if uploaded, err := parseTimeString(uploadRaw); err == nil {
		video.UploadDate = uploaded
	}
	return video, nil
}
