package categorizer

import (
	"strings"

	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/vectorizer"

	"github.com/agnivade/levenshtein"
)

// FuzzyStrategy categorizes by approximate match against corpus descriptions.
// It catches near-misses of known merchants (truncation, garbled suffixes)
// that escape the exact mapping, with the similarity ratio as confidence.
type FuzzyStrategy struct {
	descriptions []string
	categories   []string
	minRatio     float64
	logger       logging.Logger
}

// NewFuzzyStrategy builds the strategy from corpus examples. minRatio is the
// minimal normalized similarity in [0,1] that counts as a match.
func NewFuzzyStrategy(examples []models.TrainingExample, minRatio float64, logger logging.Logger) *FuzzyStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &FuzzyStrategy{minRatio: minRatio, logger: logger}
	for _, example := range examples {
		cleaned := vectorizer.CleanText(example.Description)
		if cleaned == "" {
			continue
		}
		s.descriptions = append(s.descriptions, cleaned)
		s.categories = append(s.categories, example.Category)
	}
	return s
}

// Name returns the name of this strategy for logging and debugging.
func (s *FuzzyStrategy) Name() string {
	return "Fuzzy"
}

// Categorize finds the corpus description with the highest similarity ratio.
// The first of equally good matches wins, keeping results deterministic.
func (s *FuzzyStrategy) Categorize(description string) (models.Prediction, bool) {
	cleaned := vectorizer.CleanText(description)
	if cleaned == "" {
		return models.Prediction{}, false
	}

	bestRatio := 0.0
	bestIndex := -1
	for i, candidate := range s.descriptions {
		if ratio := similarity(cleaned, candidate); ratio > bestRatio {
			bestRatio = ratio
			bestIndex = i
		}
	}
	if bestIndex < 0 || bestRatio < s.minRatio {
		return models.Prediction{}, false
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "matched", Value: s.descriptions[bestIndex]},
		logging.Field{Key: "ratio", Value: bestRatio},
	).Debug("Categorized by fuzzy corpus match")

	return models.Prediction{
		Description: description,
		Category:    s.categories[bestIndex],
		Confidence:  bestRatio,
	}, true
}

// similarity is the levenshtein distance normalized to [0,1], 1 for equal
// strings.
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0.0
	}
	distance := levenshtein.ComputeDistance(strings.ToLower(a), strings.ToLower(b))
	return 1.0 - float64(distance)/float64(longest)
}
