package classify_test

import (
	"fmt"
	"testing"

	"vidscribe/internal/classify"
	"vidscribe/internal/store"
)

func rows(texts ...string) []store.ThumbnailText {
	out := make([]store.ThumbnailText, len(texts))
	for i, text := range texts {
		out[i] = store.ThumbnailText{VideoID: fmt.Sprintf("v%d", i+1), Title: "Video", Text: text}
	}
	return out
}

func TestRunDisjointAndExhaustive(t *testing.T) {
	input := rows(
		"Generic Content Filler",
		"Daily Life Episode 4",
		"C.S. Lewis Visits Oxford 1922",
		"no visible text",
		"Handwritten letter on desk",
	)
	breakdown := classify.Run(input, classify.DefaultRules(nil), 10)

	if breakdown.Total != len(input) {
		t.Fatalf("expected total %d, got %d", len(input), breakdown.Total)
	}
	sum := 0
	for _, count := range breakdown.Counts {
		sum += count
	}
	if sum != breakdown.Total {
		t.Fatalf("category counts must sum to total: %d != %d", sum, breakdown.Total)
	}
	if breakdown.Counts[classify.CategoryGeneric] != 2 {
		t.Fatalf("expected 2 generic, got %d", breakdown.Counts[classify.CategoryGeneric])
	}
	if breakdown.Counts[classify.CategoryNoText] != 1 {
		t.Fatalf("expected 1 no_text, got %d", breakdown.Counts[classify.CategoryNoText])
	}
	if breakdown.Counts[classify.CategorySpecific] != 2 {
		t.Fatalf("expected 2 specific, got %d", breakdown.Counts[classify.CategorySpecific])
	}
}

func TestRunFirstMatchWins(t *testing.T) {
	rules := []classify.Rule{
		{Substring: "winner", Category: classify.CategoryNoText},
		{Substring: "winner takes", Category: classify.CategoryGeneric},
	}
	breakdown := classify.Run(rows("winner takes all"), rules, 0)
	if breakdown.Counts[classify.CategoryNoText] != 1 {
		t.Fatalf("first rule should decide: %+v", breakdown.Counts)
	}
}

func TestRunCaseInsensitiveMatching(t *testing.T) {
	breakdown := classify.Run(rows("daily life in town"), classify.DefaultRules(nil), 0)
	if breakdown.Counts[classify.CategoryGeneric] != 1 {
		t.Fatalf("expected case-insensitive generic match: %+v", breakdown.Counts)
	}
}

func TestRunPercentages(t *testing.T) {
	breakdown := classify.Run(rows("Content A", "Content B", "Oxford lecture hall", "Bodleian reading room"), classify.DefaultRules(nil), 0)
	if breakdown.Percent[classify.CategoryGeneric] != 50 {
		t.Fatalf("expected 50%% generic, got %v", breakdown.Percent[classify.CategoryGeneric])
	}
	if breakdown.Percent[classify.CategorySpecific] != 50 {
		t.Fatalf("expected 50%% specific, got %v", breakdown.Percent[classify.CategorySpecific])
	}
}

func TestRunSampleLimit(t *testing.T) {
	breakdown := classify.Run(rows("Content 1", "Content 2", "Content 3"), classify.DefaultRules(nil), 2)
	if len(breakdown.Samples[classify.CategoryGeneric]) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(breakdown.Samples[classify.CategoryGeneric]))
	}
}

func TestRunConfiguredPatterns(t *testing.T) {
	rules := classify.DefaultRules([]string{"Stock Footage"})
	breakdown := classify.Run(rows("stock footage of rain"), rules, 0)
	if breakdown.Counts[classify.CategoryGeneric] != 1 {
		t.Fatalf("expected configured pattern to classify as generic: %+v", breakdown.Counts)
	}
}

func TestRunEmptyInput(t *testing.T) {
	breakdown := classify.Run(nil, classify.DefaultRules(nil), 5)
	if breakdown.Total != 0 || len(breakdown.Percent) != 0 {
		t.Fatalf("unexpected breakdown for empty input: %+v", breakdown)
	}
}
