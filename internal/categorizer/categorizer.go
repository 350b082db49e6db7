package categorizer

import (
	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/predictor"
)

// Categorizer runs the strategy chain over transaction descriptions. The
// chain is fixed at construction; instances are read-only afterwards and safe
// for concurrent use.
type Categorizer struct {
	strategies []Strategy
	logger     logging.Logger
}

// New creates a Categorizer with an explicit strategy chain.
func New(strategies []Strategy, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Categorizer{strategies: strategies, logger: logger}
}

// NewDefault wires the standard chain: direct corpus mapping, fuzzy corpus
// matching, then the trained model.
func NewDefault(examples []models.TrainingExample, service *predictor.Service, fuzzyMinRatio float64, logger logging.Logger) *Categorizer {
	return New([]Strategy{
		NewDirectMappingStrategy(examples, logger),
		NewFuzzyStrategy(examples, fuzzyMinRatio, logger),
		NewModelStrategy(service),
	}, logger)
}

// Categorize runs the chain and returns the first strategy's answer. When no
// strategy answers it degrades to {unknown, 0.0} rather than failing, so one
// degenerate description never aborts a batch.
func (c *Categorizer) Categorize(description string) models.Prediction {
	for _, strategy := range c.strategies {
		if prediction, found := strategy.Categorize(description); found {
			return prediction
		}
	}
	return models.Prediction{
		Description: description,
		Category:    models.CategoryUnknown,
		Confidence:  0.0,
	}
}

// CategorizeBatch categorizes a batch of descriptions, returning a parallel
// slice of predictions.
func (c *Categorizer) CategorizeBatch(descriptions []string) []models.Prediction {
	predictions := make([]models.Prediction, len(descriptions))
	for i, description := range descriptions {
		predictions[i] = c.Categorize(description)
	}
	return predictions
}
