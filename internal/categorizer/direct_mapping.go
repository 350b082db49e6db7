package categorizer

import (
	"strings"

	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/vectorizer"
)

// DirectMappingStrategy categorizes by exact match against the curated corpus.
// A curator already labeled these descriptions, so a hit carries full
// confidence.
type DirectMappingStrategy struct {
	mappings map[string]string
	logger   logging.Logger
}

// NewDirectMappingStrategy builds the strategy from corpus examples. Keys are
// normalized with the same cleaner the vectorizer uses, so statement noise
// (store numbers, punctuation) does not defeat the match.
func NewDirectMappingStrategy(examples []models.TrainingExample, logger logging.Logger) *DirectMappingStrategy {
	if logger == nil {
		logger = logging.GetLogger()
	}
	mappings := make(map[string]string, len(examples))
	for _, example := range examples {
		key := vectorizer.CleanText(example.Description)
		if key == "" {
			continue
		}
		mappings[key] = example.Category
	}
	return &DirectMappingStrategy{mappings: mappings, logger: logger}
}

// Name returns the name of this strategy for logging and debugging.
func (s *DirectMappingStrategy) Name() string {
	return "DirectMapping"
}

// Categorize attempts an exact corpus lookup on the cleaned description.
func (s *DirectMappingStrategy) Categorize(description string) (models.Prediction, bool) {
	if strings.TrimSpace(description) == "" {
		return models.Prediction{}, false
	}

	category, found := s.mappings[vectorizer.CleanText(description)]
	if !found {
		return models.Prediction{}, false
	}

	s.logger.WithFields(
		logging.Field{Key: "strategy", Value: s.Name()},
		logging.Field{Key: "description", Value: description},
		logging.Field{Key: "category", Value: category},
	).Debug("Categorized by direct corpus mapping")

	return models.Prediction{
		Description: description,
		Category:    category,
		Confidence:  1.0,
	}, true
}
