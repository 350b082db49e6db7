package categorizer

import (
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/predictor"
)

// ModelStrategy delegates to the trained statistical model. It always answers,
// so it terminates the chain.
type ModelStrategy struct {
	service *predictor.Service
}

// NewModelStrategy wraps a loaded prediction service.
func NewModelStrategy(service *predictor.Service) *ModelStrategy {
	return &ModelStrategy{service: service}
}

// Name returns the name of this strategy for logging and debugging.
func (s *ModelStrategy) Name() string {
	return "Model"
}

// Categorize scores the description with the loaded model pair.
func (s *ModelStrategy) Categorize(description string) (models.Prediction, bool) {
	return s.service.Predict(description), true
}
