package corrections

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vidscribe/internal/store"
)

// Correction proposes a thumbnail-text value for one video. Text is treated
// as a finished, trusted value from the curation process; the only structural
// requirements are a non-empty id and non-empty text. Use
// store.NoVisibleText to mark a verified-blank thumbnail.
type Correction struct {
	VideoID string `json:"video_id"`
	Text    string `json:"text"`
}

// Batch is an ordered, deduplicated collection of corrections. Order matters
// across batches: when batches disagree, the most recently applied wins.
type Batch struct {
	Name        string
	Corrections []Correction
}

// New validates the corrections and returns a batch. Structural problems are
// reported as integrity violations before any store mutation can happen.
func New(name string, corrections []Correction) (*Batch, error) {
	seen := make(map[string]struct{}, len(corrections))
	for i, c := range corrections {
		if strings.TrimSpace(c.VideoID) == "" {
			return nil, store.Wrap(store.ErrIntegrity, "corrections", "validate batch",
				fmt.Sprintf("%s: entry %d has an empty video id", name, i+1), nil)
		}
		if strings.TrimSpace(c.Text) == "" {
			return nil, store.Wrap(store.ErrIntegrity, "corrections", "validate batch",
				fmt.Sprintf("%s: entry %d (%s) has empty text", name, i+1, c.VideoID), nil)
		}
		if _, dup := seen[c.VideoID]; dup {
			return nil, store.Wrap(store.ErrIntegrity, "corrections", "validate batch",
				fmt.Sprintf("%s: duplicate video id %s", name, c.VideoID), nil)
		}
		seen[c.VideoID] = struct{}{}
	}
	return &Batch{Name: name, Corrections: corrections}, nil
}

// Load reads a batch from a JSON file holding an ordered array of
// {"video_id": ..., "text": ...} records.
func Load(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch file: %w", err)
	}

	var corrections []Correction
	if err := json.Unmarshal(data, &corrections); err != nil {
		return nil, store.Wrap(store.ErrIntegrity, "corrections", "parse batch", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return New(name, corrections)
}
