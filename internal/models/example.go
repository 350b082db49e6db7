package models

import (
	"strings"

	"fjacquet/txn-classify/internal/classerr"
)

// TrainingExample pairs a transaction description with a curated category.
// Instances are only created through NewTrainingExample so the vocabulary
// invariant holds everywhere downstream.
type TrainingExample struct {
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
}

// NewTrainingExample validates the label against the vocabulary. The "unknown"
// sentinel is rejected: unknown predictions never feed back into training data.
func NewTrainingExample(description, category string, vocab *Vocabulary) (TrainingExample, error) {
	if strings.TrimSpace(description) == "" {
		return TrainingExample{}, &classerr.ConfigError{
			Field:  "description",
			Reason: "must not be empty",
		}
	}
	if category == CategoryUnknown || !vocab.Contains(category) {
		return TrainingExample{}, &classerr.InvalidCategoryError{Category: category}
	}
	return TrainingExample{Description: description, Category: category}, nil
}

// Prediction is the classifier's answer for a single description. Ephemeral:
// it is only persisted when accepted through the review loop.
type Prediction struct {
	Description string  `json:"description" yaml:"description"`
	Category    string  `json:"category" yaml:"category"`
	Confidence  float64 `json:"confidence" yaml:"confidence"`
}

// NeedsReview reports whether the prediction falls at or below the review
// threshold. The boundary is inclusive: exactly-at-threshold still reviews.
func (p Prediction) NeedsReview(threshold float64) bool {
	return p.Confidence <= threshold
}

// ReviewDecision is a curator's verdict on a flagged prediction.
type ReviewDecision int

const (
	// DecisionAccept keeps the predicted category.
	DecisionAccept ReviewDecision = iota
	// DecisionReassign substitutes a human-chosen category.
	DecisionReassign
	// DecisionUnknown discards the entry without creating a training example.
	DecisionUnknown
)

// ReviewEntry is a prediction flagged below the confidence threshold, awaiting
// a human decision.
type ReviewEntry struct {
	Prediction Prediction
	// Suggestion is an optional advisory category from the AI assistant.
	Suggestion string
}
