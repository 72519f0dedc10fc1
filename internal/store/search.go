package store

import (
	"context"
	"fmt"
	"strings"
)

// SearchCaptions answers a case-insensitive substring query against caption
// text. Results are ordered by video title, then numeric start time; the
// REAL-typed start_time column keeps "2.0" ahead of "10.0".
func (s *Store) SearchCaptions(ctx context.Context, term string) ([]CaptionHit, error) {
	needle, err := normalizeTerm(term)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT v.video_id, v.title, c.start_time, c.text
         FROM captions c
         JOIN videos v ON v.video_id = c.video_id
         WHERE instr(lower(c.text), ?) > 0
         ORDER BY v.title, c.start_time`,
		needle,
	)
	if err != nil {
		return nil, fmt.Errorf("search captions: %w", err)
	}
	defer rows.Close()

	var hits []CaptionHit
	for rows.Next() {
		var hit CaptionHit
		if err := rows.Scan(&hit.VideoID, &hit.Title, &hit.StartTime, &hit.Text); err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

// SearchThumbnailText answers a case-insensitive substring query against
// thumbnail descriptions, newest uploads first, video id as tie-break.
func (s *Store) SearchThumbnailText(ctx context.Context, term string) ([]ThumbnailHit, error) {
	needle, err := normalizeTerm(term)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT video_id, title, upload_date, thumbnail_text
         FROM videos
         WHERE thumbnail_text IS NOT NULL AND instr(lower(thumbnail_text), ?) > 0
         ORDER BY upload_date DESC, video_id ASC`,
		needle,
	)
	if err != nil {
		return nil, fmt.Errorf("search thumbnail text: %w", err)
	}
	defer rows.Close()

	var hits []ThumbnailHit
	for rows.Next() {
		var (
			hit       ThumbnailHit
			uploadRaw string
		)
		if err := rows.Scan(&hit.VideoID, &hit.Title, &uploadRaw, &hit.ThumbnailText); err != nil {
			return nil, err
		}
		if uploaded, err := parseTimeString(uploadRaw); err == nil {
			hit.UploadDate = uploaded
		}
		hits = append(hits, hit)
	}
	return hits, rows.Err()
}

func normalizeTerm(term string) (string, error) {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return "", Wrap(ErrInvalidQuery, "store", "search", "empty search term", nil)
	}
	// SQLite's lower() folds ASCII only; the needle must match that, or a
	// term like "MÜNCHEN" would never hit text containing it.
	return asciiLower(trimmed), nil
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
