package store

import (
	"context"
	"fmt"
)

// InsertCaptions writes caption rows for already-ingested videos inside one
// transaction. Every caption must reference an existing video; a batch with
// an unknown video id is rejected before any row is written.
func (s *Store) InsertCaptions(ctx context.Context, captions []Caption) error {
	if len(captions) == 0 {
		return nil
	}

	ids := make(map[string]struct{}, len(captions))
	for _, caption := range captions {
		ids[caption.VideoID] = struct{}{}
	}
	if err := s.verifyVideosExist(ctx, ids); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin caption tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(
		ctx,
		`INSERT INTO captions (video_id, sequence_number, start_time, end_time, text)
         VALUES (?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return fmt.Errorf("prepare caption insert: %w", err)
	}
	defer stmt.Close()

	for _, caption := range captions {
		if caption.StartTime >= caption.EndTime {
			return Wrap(ErrIntegrity, "store", "insert captions",
				fmt.Sprintf("caption %s/%d has start %.3f >= end %.3f",
					caption.VideoID, caption.SequenceNumber, caption.StartTime, caption.EndTime), nil)
		}
		if _, err := stmt.ExecContext(ctx,
			caption.VideoID,
			caption.SequenceNumber,
			caption.StartTime,
			caption.EndTime,
			caption.Text,
		); err != nil {
			return fmt.Errorf("insert caption %s/%d: %w", caption.VideoID, caption.SequenceNumber, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit captions: %w", err)
	}
	return nil
}

// CaptionsForVideo returns a video's captions in playback order.
func (s *Store) CaptionsForVideo(ctx context.Context, videoID string) ([]Caption, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, video_id, sequence_number, start_time, end_time, text
         FROM captions WHERE video_id = ? ORDER BY sequence_number`,
		videoID,
	)
	if err != nil {
		return nil, fmt.Errorf("captions for video: %w", err)
	}
	defer rows.Close()

	var captions []Caption
	for rows.Next() {
		var c Caption
		if err := rows.Scan(&c.ID, &c.VideoID, &c.SequenceNumber, &c.StartTime, &c.EndTime, &c.Text); err != nil {
			return nil, err
		}
		captions = append(captions, c)
	}
	return captions, rows.Err()
}

func (s *Store) verifyVideosExist(ctx context.Context, ids map[string]struct{}) error {
	ordered := make([]string, 0, len(ids))
	for id := range ids {
		ordered = append(ordered, id)
	}
	args := make([]any, len(ordered))
	for i, id := range ordered {
		args[i] = id
	}

	query := `SELECT video_id FROM videos WHERE video_id IN (` + makePlaceholders(len(ordered)) + `)`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("verify videos: %w", err)
	}
	defer rows.Close()

	found := make(map[string]struct{}, len(ordered))
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return err
		}
		found[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, id := range ordered {
		if _, ok := found[id]; !ok {
			return Wrap(ErrIntegrity, "store", "insert captions", "caption references unknown video "+id, nil)
		}
	}
	return nil
}
