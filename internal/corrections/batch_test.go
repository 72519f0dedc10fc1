package corrections_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"vidscribe/internal/corrections"
	"vidscribe/internal/store"
)

func TestNewRejectsDuplicateIDs(t *testing.T) {
	_, err := corrections.New("dup", []corrections.Correction{
		{VideoID: "v1", Text: "first"},
		{VideoID: "v1", Text: "second"},
	})
	if !errors.Is(err, store.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestNewRejectsEmptyText(t *testing.T) {
	_, err := corrections.New("empty", []corrections.Correction{
		{VideoID: "v1", Text: "  "},
	})
	if !errors.Is(err, store.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestNewRejectsEmptyID(t *testing.T) {
	_, err := corrections.New("noid", []corrections.Correction{
		{VideoID: "", Text: "value"},
	})
	if !errors.Is(err, store.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}

func TestLoadPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2021-oxford-batch.json")
	content := `[
		{"video_id": "v2", "text": "Second Entry"},
		{"video_id": "v1", "text": "First Entry"}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	batch, err := corrections.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if batch.Name != "2021-oxford-batch" {
		t.Fatalf("unexpected batch name %q", batch.Name)
	}
	if len(batch.Corrections) != 2 || batch.Corrections[0].VideoID != "v2" || batch.Corrections[1].VideoID != "v1" {
		t.Fatalf("file order not preserved: %#v", batch.Corrections)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`{"video_id": "v1"}`), 0o644); err != nil {
		t.Fatalf("write batch: %v", err)
	}
	if _, err := corrections.Load(path); !errors.Is(err, store.ErrIntegrity) {
		t.Fatalf("expected ErrIntegrity, got %v", err)
	}
}
