// Package review implements the human-in-the-loop correction flow for
// low-confidence predictions. Accepted corrections feed the training corpus;
// retraining stays a separate, explicit operation.
package review

import (
	"context"
	"fmt"
	"sort"

	"fjacquet/txn-classify/internal/corpus"
	"fjacquet/txn-classify/internal/logging"
	"fjacquet/txn-classify/internal/models"
	"fjacquet/txn-classify/internal/suggest"
)

// Loop surfaces low-confidence predictions and routes curator decisions back
// into the corpus store.
type Loop struct {
	store  *corpus.Store
	vocab  *models.Vocabulary
	ai     suggest.AIClient
	logger logging.Logger
}

// NewLoop creates a review loop over the given corpus store and vocabulary.
func NewLoop(store *corpus.Store, vocab *models.Vocabulary, logger logging.Logger) *Loop {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Loop{store: store, vocab: vocab, logger: logger}
}

// WithSuggestions attaches an optional AI client used to annotate entries.
func (l *Loop) WithSuggestions(ai suggest.AIClient) *Loop {
	l.ai = ai
	return l
}

// Filter returns a ReviewEntry for every prediction with confidence at or
// below the threshold. The boundary is inclusive: only strictly greater
// confidence is auto-accepted. Entries come back sorted by ascending
// confidence so the least certain items surface first; description breaks
// ties to keep the order stable.
func Filter(predictions []models.Prediction, threshold float64) []models.ReviewEntry {
	var entries []models.ReviewEntry
	for _, prediction := range predictions {
		if prediction.NeedsReview(threshold) {
			entries = append(entries, models.ReviewEntry{Prediction: prediction})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Prediction.Confidence != entries[j].Prediction.Confidence {
			return entries[i].Prediction.Confidence < entries[j].Prediction.Confidence
		}
		return entries[i].Prediction.Description < entries[j].Prediction.Description
	})
	return entries
}

// Resolve turns a curator decision into a training example, or nil when the
// entry is discarded. Accepting an "unknown" prediction is rejected: unknown
// is a fallback label, never trainable data.
func (l *Loop) Resolve(entry models.ReviewEntry, decision models.ReviewDecision, category string) (*models.TrainingExample, error) {
	switch decision {
	case models.DecisionAccept:
		example, err := models.NewTrainingExample(entry.Prediction.Description, entry.Prediction.Category, l.vocab)
		if err != nil {
			return nil, fmt.Errorf("cannot accept prediction: %w", err)
		}
		return &example, nil

	case models.DecisionReassign:
		example, err := models.NewTrainingExample(entry.Prediction.Description, category, l.vocab)
		if err != nil {
			return nil, fmt.Errorf("cannot reassign prediction: %w", err)
		}
		return &example, nil

	case models.DecisionUnknown:
		return nil, nil

	default:
		return nil, fmt.Errorf("unsupported review decision: %d", decision)
	}
}

// Apply appends resolved training examples to the corpus store. It does not
// trigger retraining.
func (l *Loop) Apply(examples []models.TrainingExample) error {
	if err := l.store.Append(examples, l.vocab); err != nil {
		return fmt.Errorf("appending review corrections: %w", err)
	}
	l.logger.WithField("corrections", len(examples)).Info("Applied review corrections to corpus")
	return nil
}

// Annotate fills in AI suggestions for the entries when an AI client is
// configured. Failures are logged and skipped; suggestions are advisory.
func (l *Loop) Annotate(ctx context.Context, entries []models.ReviewEntry) {
	if l.ai == nil {
		return
	}
	for i := range entries {
		suggestion, err := l.ai.SuggestCategory(ctx, entries[i].Prediction.Description, l.vocab)
		if err != nil {
			l.logger.WithError(err).WithField(
				"description", entries[i].Prediction.Description,
			).Warn("AI suggestion failed")
			continue
		}
		entries[i].Suggestion = suggestion
	}
}
