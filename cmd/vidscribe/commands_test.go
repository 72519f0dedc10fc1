package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"vidscribe/internal/store"
	"vidscribe/internal/testsupport"
)

func TestApplyCommandReportsCounts(t *testing.T) {
	env := setupCLITestEnv(t)
	st := env.openStore(t)
	testsupport.SeedVideo(t, st, store.Video{
		ID:           "V1",
		Title:        "Oxford Visit",
		ThumbnailURL: "https://example.org/v1.jpg",
	})

	batchPath := writeFile(t, filepath.Join(t.TempDir(), "batch.json"),
		`[{"video_id": "V1", "text": "C.S. Lewis Visits Oxford 1922"}]`)

	out, _, err := runCLI(t, env, "apply", batchPath)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	requireContains(t, out, "Batch batch")
	requireContains(t, out, "updated")

	video, err := st.GetVideo(context.Background(), "V1")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if video.ThumbnailText != "C.S. Lewis Visits Oxford 1922" {
		t.Fatalf("unexpected stored text %q", video.ThumbnailText)
	}
}

func TestApplyCommandRejectsDuplicateBatch(t *testing.T) {
	env := setupCLITestEnv(t)
	st := env.openStore(t)
	testsupport.SeedVideo(t, st, store.Video{ID: "V1", Title: "Oxford Visit"})

	batchPath := writeFile(t, filepath.Join(t.TempDir(), "dup.json"),
		`[{"video_id": "V1", "text": "a"}, {"video_id": "V1", "text": "b"}]`)

	_, _, err := runCLI(t, env, "apply", batchPath)
	if err == nil || !strings.Contains(err.Error(), "duplicate video id") {
		t.Fatalf("expected duplicate id rejection, got %v", err)
	}

	video, err := st.GetVideo(context.Background(), "V1")
	if err != nil {
		t.Fatalf("GetVideo: %v", err)
	}
	if video.ThumbnailText != "" {
		t.Fatalf("rejected batch must not write, got %q", video.ThumbnailText)
	}
}

func TestClearCommandRequiresForce(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "clear", "--like", "Generic%")
	if err == nil || !strings.Contains(err.Error(), "--force") {
		t.Fatalf("expected force guard, got %v", err)
	}
}

func TestClearCommandClearsMatching(t *testing.T) {
	env := setupCLITestEnv(t)
	st := env.openStore(t)
	ctx := context.Background()
	testsupport.SeedVideo(t, st, store.Video{ID: "a", Title: "A"})
	if _, err := st.SetThumbnailText(ctx, "a", "Generic X"); err != nil {
		t.Fatalf("SetThumbnailText: %v", err)
	}

	out, _, err := runCLI(t, env, "clear", "--like", "Generic%", "--force")
	if err != nil {
		t.Fatalf("clear: %v", err)
	}
	requireContains(t, out, "Cleared thumbnail text on 1 video(s)")
}

func TestSearchCommandRejectsBlankTerm(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, env, "search", "captions", "   ")
	if err == nil || !strings.Contains(err.Error(), "empty search term") {
		t.Fatalf("expected invalid query error, got %v", err)
	}
}

func TestSearchThumbsCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	st := env.openStore(t)
	ctx := context.Background()
	testsupport.SeedVideo(t, st, store.Video{ID: "v1", Title: "Tea Time"})
	if _, err := st.SetThumbnailText(ctx, "v1", "C.S. Lewis Has Tea with Warnie"); err != nil {
		t.Fatalf("SetThumbnailText: %v", err)
	}

	out, _, err := runCLI(t, env, "search", "thumbs", "tea")
	if err != nil {
		t.Fatalf("search thumbs: %v", err)
	}
	requireContains(t, out, "Tea Time")
}

func TestStatusCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	st := env.openStore(t)
	testsupport.SeedVideo(t, st, store.Video{ID: "v1", Title: "Only Video"})

	out, _, err := runCLI(t, env, "status")
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	requireContains(t, out, "Videos")
}

func TestIngestAndExportCommands(t *testing.T) {
	env := setupCLITestEnv(t)

	snapshotPath := writeFile(t, filepath.Join(t.TempDir(), "snapshot.json"), `{
		"videos": [{"video_id": "v1", "title": "Garden Walk", "upload_date": "2021-04-01"}],
		"captions": [{"video_id": "v1", "sequence_number": 1, "start_time": 0, "end_time": 2, "text": "hello there"}]
	}`)

	out, _, err := runCLI(t, env, "ingest", snapshotPath)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	requireContains(t, out, "Ingested 1 video(s) and 1 caption(s)")

	out, _, err = runCLI(t, env, "export")
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	requireContains(t, out, "Garden Walk")
	requireContains(t, out, "hello there")
}

func TestConfigInitCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err := runCLI(t, env, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
}
