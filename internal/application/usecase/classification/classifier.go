// Package classification implements prefix-based product classification.
package classification

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/deolhonanota/backend/internal/domain/entity"
)

// UncategorizedKey is the bucket key used for products no prefix rule matches.
const UncategorizedKey = "uncategorized"

// rule is a prefix rule prepared for matching.
type rule struct {
	prefix     string
	categoryID uuid.UUID
	dangling   bool
}

// Classifier assigns spending categories to product names by longest-prefix
// match. A Classifier is an immutable snapshot of the prefix index: build a
// new one after mutating prefixes. Safe for concurrent use once built.
type Classifier struct {
	rules []rule
}

// NewClassifier builds a Classifier from a snapshot of prefix rules.
// Rules are sorted by descending prefix length so the first leading-substring
// match wins; the sort is stable, so equal-length prefixes keep their input
// order and the first-loaded rule takes precedence.
func NewClassifier(prefixes []*entity.CategoryPrefixWithCategory) *Classifier {
	rules := make([]rule, 0, len(prefixes))
	for _, p := range prefixes {
		if p.Prefix == nil || p.Prefix.Prefix == "" {
			continue
		}
		rules = append(rules, rule{
			prefix:     strings.ToUpper(p.Prefix.Prefix),
			categoryID: p.Prefix.CategoryID,
			dangling:   p.Category == nil,
		})
	}

	sort.SliceStable(rules, func(i, j int) bool {
		return len(rules[i].prefix) > len(rules[j].prefix)
	})

	return &Classifier{rules: rules}
}

// Classify returns the category ID for a product name. The boolean is false
// when the product is uncategorized: no prefix matches, or the winning rule
// references a category that no longer exists.
func (c *Classifier) Classify(productName string) (uuid.UUID, bool) {
	name := strings.ToUpper(productName)

	for _, r := range c.rules {
		if strings.HasPrefix(name, r.prefix) {
			if r.dangling {
				return uuid.Nil, false
			}
			return r.categoryID, true
		}
	}

	return uuid.Nil, false
}

// ClassifyKey returns the bucket key for a product name: the category ID
// string, or UncategorizedKey when the product is uncategorized.
func (c *Classifier) ClassifyKey(productName string) string {
	id, ok := c.Classify(productName)
	if !ok {
		return UncategorizedKey
	}
	return id.String()
}

// RuleCount returns the number of rules in the snapshot.
func (c *Classifier) RuleCount() int {
	return len(c.rules)
}
