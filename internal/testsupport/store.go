package testsupport

import (
	"context"
	"testing"
	"time"

	"vidscribe/internal/config"
	"vidscribe/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// SeedVideo inserts a video row for tests.
func SeedVideo(t testing.TB, st *store.Store, video store.Video) {
	t.Helper()

	if video.UploadDate.IsZero() {
		video.UploadDate = time.Date(2021, 6, 1, 0, 0, 0, 0, time.UTC)
	}
	if err := st.UpsertVideo(context.Background(), video); err != nil {
		t.Fatalf("store.UpsertVideo(%s): %v", video.ID, err)
	}
}

// SeedCaptions inserts caption rows for tests.
func SeedCaptions(t testing.TB, st *store.Store, captions ...store.Caption) {
	t.Helper()

	if err := st.InsertCaptions(context.Background(), captions); err != nil {
		t.Fatalf("store.InsertCaptions: %v", err)
	}
}
