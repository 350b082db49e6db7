// Package trainer builds the matched (feature model, classifier model) pair
// from the training corpus and persists it for the prediction service.
package trainer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"fjacquet/txn-classify/internal/classerr"
	"fjacquet/txn-classify/internal/classifier"
	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/vectorizer"
)

// Config holds the training parameters.
type Config struct {
	Vectorizer      vectorizer.Config
	HoldoutFraction float64
	Augment         bool
}

// DefaultConfig returns the training defaults.
func DefaultConfig() Config {
	return Config{
		Vectorizer:      vectorizer.DefaultConfig(),
		HoldoutFraction: 0.2,
		Augment:         true,
	}
}

// Result is the outcome of a training run: a matched model pair plus the
// advisory report for the curator.
type Result struct {
	Feature    *vectorizer.FeatureModel
	Classifier *classifier.Model
	Report     models.TrainingReport
}

// Trainer fits the feature extractor and classifier from training examples.
type Trainer struct {
	vocab  *models.Vocabulary
	cfg    Config
	logger logging.Logger
}

// New creates a Trainer for the given vocabulary and configuration.
func New(vocab *models.Vocabulary, cfg Config, logger logging.Logger) *Trainer {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Trainer{vocab: vocab, cfg: cfg, logger: logger}
}

// Train fits the matched pair on the examples. It rejects an empty corpus
// (ConfigError) and corpora with fewer than two distinct categories
// (InsufficientDataError). The held-out evaluation is advisory; the final
// models are fitted on the full corpus.
func (t *Trainer) Train(examples []models.TrainingExample) (*Result, error) {
	if len(examples) == 0 {
		return nil, &classerr.ConfigError{
			Field:  "corpus",
			Reason: "training corpus is empty",
		}
	}

	counts := make(map[string]int)
	for _, example := range examples {
		counts[example.Category]++
	}
	if len(counts) < 2 {
		return nil, &classerr.InsufficientDataError{
			Examples:   len(examples),
			Categories: len(counts),
			Reason:     "at least 2 distinct categories are required",
		}
	}

	expanded := examples
	if t.cfg.Augment {
		expanded = augment(examples)
	}

	report := models.TrainingReport{
		TotalExamples:  len(examples),
		CategoryCounts: counts,
	}

	// Advisory held-out evaluation on a deterministic split
	train, holdout := split(expanded, t.cfg.HoldoutFraction)
	if len(holdout) > 0 && distinctCategories(train) >= 2 {
		correct, err := t.evaluate(train, holdout)
		if err != nil {
			t.logger.WithError(err).Warn("Held-out evaluation failed, continuing without it")
		} else {
			report.HoldoutExamples = len(holdout)
			report.HoldoutCorrect = correct
		}
	}

	// Final models are fitted on everything
	feature, model, err := t.fit(expanded)
	if err != nil {
		return nil, err
	}

	fingerprint := pairingFingerprint(feature, model)
	feature.Fingerprint = fingerprint
	model.Fingerprint = fingerprint

	report.LogSummary(t.logger)
	return &Result{Feature: feature, Classifier: model, Report: report}, nil
}

func (t *Trainer) fit(examples []models.TrainingExample) (*vectorizer.FeatureModel, *classifier.Model, error) {
	descriptions := make([]string, len(examples))
	labels := make([]string, len(examples))
	for i, example := range examples {
		descriptions[i] = example.Description
		labels[i] = example.Category
	}

	feature, err := vectorizer.Fit(descriptions, t.cfg.Vectorizer)
	if err != nil {
		return nil, nil, fmt.Errorf("fitting feature extractor: %w", err)
	}

	vectors := make([][]float64, len(descriptions))
	for i, description := range descriptions {
		vectors[i] = feature.Transform(description)
	}

	model, err := classifier.Train(vectors, labels, t.vocab)
	if err != nil {
		return nil, nil, fmt.Errorf("training classifier: %w", err)
	}
	return feature, model, nil
}

func (t *Trainer) evaluate(train, holdout []models.TrainingExample) (int, error) {
	feature, model, err := t.fit(train)
	if err != nil {
		return 0, err
	}
	correct := 0
	for _, example := range holdout {
		predicted, _ := model.Predict(feature.Transform(example.Description))
		if predicted == example.Category {
			correct++
		}
	}
	return correct, nil
}

// split carves out every Nth example as the held-out set. Deterministic by
// construction so repeated runs on the same corpus report the same accuracy.
func split(examples []models.TrainingExample, fraction float64) (train, holdout []models.TrainingExample) {
	if fraction <= 0 || len(examples) < 2 {
		return examples, nil
	}
	every := int(1.0 / fraction)
	if every < 2 {
		every = 2
	}
	for i, example := range examples {
		if (i+1)%every == 0 {
			holdout = append(holdout, example)
		} else {
			train = append(train, example)
		}
	}
	return train, holdout
}

func distinctCategories(examples []models.TrainingExample) int {
	seen := make(map[string]struct{})
	for _, example := range examples {
		seen[example.Category] = struct{}{}
	}
	return len(seen)
}

// augment expands every example with the merchant-name variations statements
// commonly append, so the classifier tolerates them at prediction time.
func augment(examples []models.TrainingExample) []models.TrainingExample {
	variations := []string{"%s #", "%s STORE", "SQ *%s", "%s*", "%s LLC", "%s INC"}
	out := make([]models.TrainingExample, 0, len(examples)*(len(variations)+1))
	for _, example := range examples {
		out = append(out, example)
		for _, variation := range variations {
			out = append(out, models.TrainingExample{
				Description: fmt.Sprintf(variation, example.Description),
				Category:    example.Category,
			})
		}
	}
	return out
}

// pairingFingerprint derives the identifier stamped on both halves of the
// pair: a hash over the fitted feature space and the class list. The loader
// refuses any pair whose fingerprints disagree.
func pairingFingerprint(feature *vectorizer.FeatureModel, model *classifier.Model) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(feature.Terms, "\x00")))
	h.Write([]byte{0xff})
	h.Write([]byte(strings.Join(model.Labels, "\x00")))
	return hex.EncodeToString(h.Sum(nil))
}
