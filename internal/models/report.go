package models

import (
	"fmt"
	"io"
	"sort"

	"fjacquet/txn-classify/internal/logging"
)

// TrainingReport summarizes a training run: per-category example counts and
// accuracy on the held-out split. Advisory only; it helps the curator spot
// underrepresented categories.
type TrainingReport struct {
	TotalExamples   int            `yaml:"total_examples"`
	CategoryCounts  map[string]int `yaml:"category_counts"`
	HoldoutExamples int            `yaml:"holdout_examples"`
	HoldoutCorrect  int            `yaml:"holdout_correct"`
}

// HoldoutAccuracy returns the held-out accuracy in [0,1], or 0 when no
// examples were held out.
func (r TrainingReport) HoldoutAccuracy() float64 {
	if r.HoldoutExamples == 0 {
		return 0.0
	}
	return float64(r.HoldoutCorrect) / float64(r.HoldoutExamples)
}

// LogSummary logs the report through the injected logger.
func (r TrainingReport) LogSummary(logger logging.Logger) {
	if logger == nil {
		return
	}
	logger.Info("Training summary",
		logging.Field{Key: "total_examples", Value: r.TotalExamples},
		logging.Field{Key: "categories", Value: len(r.CategoryCounts)},
		logging.Field{Key: "holdout_examples", Value: r.HoldoutExamples},
		logging.Field{Key: "holdout_accuracy", Value: r.HoldoutAccuracy()},
	)
}

// Write renders the report as text for the curator, categories sorted by name.
func (r TrainingReport) Write(w io.Writer) error {
	names := make([]string, 0, len(r.CategoryCounts))
	for name := range r.CategoryCounts {
		names = append(names, name)
	}
	sort.Strings(names)

	if _, err := fmt.Fprintf(w, "Training examples: %d\n", r.TotalExamples); err != nil {
		return err
	}
	for _, name := range names {
		if _, err := fmt.Fprintf(w, "  %-20s %d\n", name, r.CategoryCounts[name]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Held-out accuracy: %.2f (%d/%d)\n",
		r.HoldoutAccuracy(), r.HoldoutCorrect, r.HoldoutExamples)
	return err
}
