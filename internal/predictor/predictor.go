// Package predictor loads a persisted matched model pair and serves
// predictions. The Service handle is read-only after Load and safe for
// concurrent use; no hidden process-wide state.
package predictor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/txn-classify/internal/classerr"
	"fjacquet/txn-classify/internal/classifier"
	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/trainer"
	"fjacquet/txn-classify/internal/vectorizer"

	"gopkg.in/yaml.v3"
)

// Service is a loaded matched (feature model, classifier model) pair.
type Service struct {
	feature *vectorizer.FeatureModel
	model   *classifier.Model
	vocab   *models.Vocabulary
	logger  logging.Logger
}

// Load reads the persisted pair from dir. It fails with ModelNotFoundError
// when either artifact is absent and ModelMismatchError when the pairing
// fingerprints disagree; it never silently falls back to a stale model.
func Load(dir string, vocab *models.Vocabulary, logger logging.Logger) (*Service, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}

	var feature vectorizer.FeatureModel
	if err := readArtifact(filepath.Join(dir, trainer.FeatureModelFile), &feature); err != nil {
		return nil, err
	}
	var model classifier.Model
	if err := readArtifact(filepath.Join(dir, trainer.ClassifierModelFile), &model); err != nil {
		return nil, err
	}

	if feature.Fingerprint == "" || feature.Fingerprint != model.Fingerprint {
		return nil, &classerr.ModelMismatchError{
			FeatureFingerprint:    feature.Fingerprint,
			ClassifierFingerprint: model.Fingerprint,
		}
	}

	// Reject label drift at load time instead of discovering it per prediction
	for _, label := range model.Labels {
		if !vocab.Contains(label) {
			return nil, &classerr.InvalidCategoryError{Category: label}
		}
	}

	logger.WithFields(
		logging.Field{Key: "model_dir", Value: dir},
		logging.Field{Key: "terms", Value: len(feature.Terms)},
		logging.Field{Key: "classes", Value: len(model.Labels)},
	).Debug("Loaded model pair")

	return &Service{
		feature: &feature,
		model:   &model,
		vocab:   vocab,
		logger:  logger,
	}, nil
}

func readArtifact(path string, out interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &classerr.ModelNotFoundError{Path: path, Err: err}
		}
		return fmt.Errorf("reading model artifact %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parsing model artifact %s: %w", path, err)
	}
	return nil
}

// Fingerprint returns the pairing identifier of the loaded pair.
func (s *Service) Fingerprint() string {
	return s.feature.Fingerprint
}

// Predict categorizes a single description. Empty or whitespace-only input
// yields {unknown, 0.0} without touching the model. A description whose
// tokens are all out of vocabulary also yields {unknown, 0.0}: with a zero
// vector the posterior collapses to the class priors, and reporting those as
// confidence would auto-accept merchants the model has never seen.
func (s *Service) Predict(description string) models.Prediction {
	if strings.TrimSpace(description) == "" {
		return models.Prediction{
			Description: description,
			Category:    models.CategoryUnknown,
			Confidence:  0.0,
		}
	}

	if s.feature.Coverage(description) == 0 {
		return models.Prediction{
			Description: description,
			Category:    models.CategoryUnknown,
			Confidence:  0.0,
		}
	}

	category, confidence := s.model.Predict(s.feature.Transform(description))
	return models.Prediction{
		Description: description,
		Category:    category,
		Confidence:  confidence,
	}
}

// PredictBatch categorizes a batch of descriptions, returning a parallel slice
// of predictions. One degenerate record never blocks the rest of the batch.
func (s *Service) PredictBatch(descriptions []string) []models.Prediction {
	predictions := make([]models.Prediction, len(descriptions))
	for i, description := range descriptions {
		predictions[i] = s.Predict(description)
	}
	return predictions
}
