package classify

import "vidscribe/internal/store"

// Category labels a bucket of thumbnail text quality.
type Category string

const (
	// CategoryGeneric marks low-information placeholder text.
	CategoryGeneric Category = "generic"
	// CategorySpecific marks verified, descriptive text; the fallback when no
	// rule matches.
	CategorySpecific Category = "specific"
	// CategoryNoText marks thumbnails verified to carry no readable text.
	CategoryNoText Category = "no_text"
)

// Rule maps a substring to a category. Matching is case-insensitive.
type Rule struct {
	Substring string
	Category  Category
}

// DefaultRules returns the built-in ordered rule list. The first matching
// rule decides; rows matching none are specific. Extra generic patterns from
// configuration slot in after the built-ins so the sentinel rule stays first.
func DefaultRules(extraGeneric []string) []Rule {
	rules := []Rule{
		{Substring: store.NoVisibleText, Category: CategoryNoText},
		{Substring: "Content", Category: CategoryGeneric},
		{Substring: "Daily Life", Category: CategoryGeneric},
		{Substring: "Vlog", Category: CategoryGeneric},
		{Substring: "Untitled", Category: CategoryGeneric},
		{Substring: "Placeholder", Category: CategoryGeneric},
	}
	for _, pattern := range extraGeneric {
		if pattern == "" {
			continue
		}
		rules = append(rules, Rule{Substring: pattern, Category: CategoryGeneric})
	}
	return rules
}
