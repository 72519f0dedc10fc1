// Package export writes the full-corpus transcript dump: the canonical
// long-form text format other tooling consumes.
package export

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"vidscribe/internal/store"
)

const headerRule = "========================================"

// WriteTranscript dumps every video's captions grouped by video, ordered by
// (upload date, title), with a header per group and one line per caption
// interval in playback order.
func WriteTranscript(ctx context.Context, st *store.Store, w io.Writer) error {
	videos, err := st.ListVideos(ctx, store.VideoFilter{})
	if err != nil {
		return err
	}

	out := bufio.NewWriter(w)
	for i, video := range videos {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}
		}
		if err := writeHeader(out, video); err != nil {
			return err
		}

		captions, err := st.CaptionsForVideo(ctx, video.ID)
		if err != nil {
			return err
		}
		for _, caption := range captions {
			if _, err := fmt.Fprintf(out, "[%s - %s] %s\n",
				formatOffset(caption.StartTime),
				formatOffset(caption.EndTime),
				caption.Text,
			); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}
		}
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("flush transcript: %w", err)
	}
	return nil
}

func writeHeader(out io.Writer, video *store.Video) error {
	lines := []string{
		headerRule,
		DisplayTitle(video.Title),
		fmt.Sprintf("id: %s  date: %s", video.ID, video.UploadDate.Format("2006-01-02")),
	}
	if video.SourceURL != "" {
		lines = append(lines, "url: "+video.SourceURL)
	}
	lines = append(lines, headerRule)
	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return fmt.Errorf("write header: %w", err)
		}
	}
	return nil
}

// DisplayTitle title-cases titles that arrived fully lower-cased from
// ingestion; anything with existing capitalization passes through untouched.
func DisplayTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return "Untitled"
	}
	if trimmed != strings.ToLower(trimmed) {
		return trimmed
	}
	return cases.Title(language.Und).String(trimmed)
}

func formatOffset(seconds float64) string {
	minutes := int(seconds) / 60
	remainder := seconds - float64(minutes*60)
	return fmt.Sprintf("%02d:%04.1f", minutes, remainder)
}
