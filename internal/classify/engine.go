package classify

import (
	"strings"

	"vidscribe/internal/store"
)

// Sample is one row retained per category for operator spot-checking.
type Sample struct {
	VideoID string
	Text    string
}

// Breakdown partitions the non-empty thumbnail-text rows into categories.
// Every row lands in exactly one bucket, so the per-category counts sum to
// Total.
type Breakdown struct {
	Total   int
	Counts  map[Category]int
	Percent map[Category]float64
	Samples map[Category][]Sample
}

// Run evaluates the ordered rules over the rows; the first matching rule
// decides a row's category and unmatched rows are specific. Classification
// never mutates the store: it works on rows already read out.
func Run(rows []store.ThumbnailText, rules []Rule, sampleLimit int) Breakdown {
	breakdown := Breakdown{
		Total:   len(rows),
		Counts:  make(map[Category]int),
		Percent: make(map[Category]float64),
		Samples: make(map[Category][]Sample),
	}

	for _, row := range rows {
		category := categorize(row.Text, rules)
		breakdown.Counts[category]++
		if sampleLimit > 0 && len(breakdown.Samples[category]) < sampleLimit {
			breakdown.Samples[category] = append(breakdown.Samples[category], Sample{
				VideoID: row.VideoID,
				Text:    row.Text,
			})
		}
	}

	if breakdown.Total > 0 {
		for category, count := range breakdown.Counts {
			breakdown.Percent[category] = 100 * float64(count) / float64(breakdown.Total)
		}
	}
	return breakdown
}

func categorize(text string, rules []Rule) Category {
	lowered := strings.ToLower(text)
	for _, rule := range rules {
		if rule.Substring == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(rule.Substring)) {
			return rule.Category
		}
	}
	return CategorySpecific
}
