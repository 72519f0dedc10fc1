package export_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"vidscribe/internal/export"
	"vidscribe/internal/store"
	"vidscribe/internal/testsupport"
)

func TestWriteTranscriptGroupsAndOrders(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)

	ctx := context.Background()
	testsupport.SeedVideo(t, st, store.Video{
		ID:         "late",
		Title:      "Later Upload",
		UploadDate: time.Date(2022, 2, 2, 0, 0, 0, 0, time.UTC),
		SourceURL:  "https://example.org/late",
	})
	testsupport.SeedVideo(t, st, store.Video{
		ID:         "early",
		Title:      "Earlier Upload",
		UploadDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		SourceURL:  "https://example.org/early",
	})
	testsupport.SeedCaptions(t, st,
		store.Caption{VideoID: "late", SequenceNumber: 1, StartTime: 0, EndTime: 2.5, Text: "later first line"},
		store.Caption{VideoID: "early", SequenceNumber: 2, StartTime: 65, EndTime: 68, Text: "early second line"},
		store.Caption{VideoID: "early", SequenceNumber: 1, StartTime: 1.5, EndTime: 4, Text: "early first line"},
	)

	var buf bytes.Buffer
	if err := export.WriteTranscript(ctx, st, &buf); err != nil {
		t.Fatalf("WriteTranscript: %v", err)
	}
	out := buf.String()

	earlyAt := strings.Index(out, "Earlier Upload")
	lateAt := strings.Index(out, "Later Upload")
	if earlyAt < 0 || lateAt < 0 || earlyAt > lateAt {
		t.Fatalf("videos must be ordered by upload date:\n%s", out)
	}

	firstAt := strings.Index(out, "early first line")
	secondAt := strings.Index(out, "early second line")
	if firstAt < 0 || secondAt < 0 || firstAt > secondAt {
		t.Fatalf("captions must be in sequence order:\n%s", out)
	}

	if !strings.Contains(out, "id: early  date: 2020-01-01") {
		t.Fatalf("missing header metadata:\n%s", out)
	}
	if !strings.Contains(out, "url: https://example.org/early") {
		t.Fatalf("missing source url:\n%s", out)
	}
	if !strings.Contains(out, "[01:05.0 - 01:08.0] early second line") {
		t.Fatalf("unexpected interval formatting:\n%s", out)
	}
}

func TestDisplayTitle(t *testing.T) {
	cases := map[string]string{
		"a walk through oxford": "A Walk Through Oxford",
		"Already Styled Title":  "Already Styled Title",
		"  ":                    "Untitled",
	}
	for input, want := range cases {
		if got := export.DisplayTitle(input); got != want {
			t.Errorf("DisplayTitle(%q) = %q, want %q", input, got, want)
		}
	}
}
