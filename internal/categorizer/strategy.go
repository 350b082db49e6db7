// Package categorizer assigns categories to transaction descriptions using
// multiple methods, tried in order:
// 1. Direct description-to-category mapping from the training corpus
// 2. Fuzzy matching against corpus descriptions
// 3. The trained statistical model as the general fallback
package categorizer

import (
	"fjacquet/txn-classify/internal/models"
)

// Strategy defines a method for categorizing a transaction description.
type Strategy interface {
	// Categorize attempts to categorize the description. The boolean reports
	// whether this strategy produced an answer; when false the next strategy
	// in the chain is consulted.
	Categorize(description string) (models.Prediction, bool)

	// Name returns the name of this strategy for logging and debugging.
	Name() string
}
